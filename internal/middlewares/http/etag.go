package http

import (
	"net/http"
	"strings"
)

// Tagger computes an entity tag for a response body.
type Tagger interface {
	ETag(data []byte) string
}

// ETagMiddleware tags successful GET responses with a weak tag computed on
// the uncoded body and answers 304 when the client already holds the same
// content. A nil tagger disables it.
func ETagMiddleware(t Tagger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if t == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			bw := newBufferedResponseWriter(w)
			next.ServeHTTP(bw, r)

			body := bw.buf.Bytes()
			if bw.status() != http.StatusOK {
				w.WriteHeader(bw.status())
				_, _ = w.Write(body)
				return
			}

			tag := weakPrefix + t.ETag(body)
			w.Header().Set("ETag", tag)
			if matches(r.Header.Get("If-None-Match"), tag) {
				w.WriteHeader(http.StatusNotModified)
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(body)
		})
	}
}

const weakPrefix = "W/"

// matches applies the weak comparison of If-None-Match.
func matches(header, tag string) bool {
	opaque := strings.TrimPrefix(tag, weakPrefix)
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, weakPrefix) == opaque {
			return true
		}
	}
	return false
}
