package http

import (
	"net/http"
	"strconv"
	"strings"
)

// Compressor gzips a response body.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// GzipMiddleware compresses JSON and text responses for clients that accept
// gzip. Responses the handler already encoded pass through untouched. A nil
// compressor disables it.
func GzipMiddleware(c Compressor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if c == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			bw := newBufferedResponseWriter(w)
			next.ServeHTTP(bw, r)

			body := bw.buf.Bytes()
			w.Header().Add("Vary", "Accept-Encoding")
			if w.Header().Get("Content-Encoding") == "" &&
				compressible(w.Header().Get("Content-Type")) && len(body) > 0 {
				compressed, err := c.Compress(body)
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				body = compressed
				w.Header().Set("Content-Encoding", "gzip")
			}
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
			w.WriteHeader(bw.status())
			_, _ = w.Write(body)
		})
	}
}

func compressible(contentType string) bool {
	contentType = strings.ToLower(contentType)
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "text/")
}
