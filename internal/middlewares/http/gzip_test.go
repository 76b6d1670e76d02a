package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gophpowa/internal/configs/compressor"
)

type failingCompressor struct{}

func (failingCompressor) Compress([]byte) ([]byte, error) { return nil, assert.AnError }

func TestGzipMiddleware(t *testing.T) {
	jsonHandler := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"fields":[],"data":[]}`))
		}
	}
	binaryHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte{1, 2, 3})
	})

	preEncoded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.Header().Set("Content-Encoding", "gzip")
		gzw := gzip.NewWriter(w)
		_, _ = gzw.Write([]byte("gophpowa_requests_total 1\n"))
		_ = gzw.Close()
	})

	tests := []struct {
		name           string
		compressor     Compressor
		handler        http.Handler
		acceptEncoding string
		wantStatus     int
		wantGzip       bool
		wantBody       []byte
	}{
		{
			name:       "client without gzip",
			compressor: compressor.New(gzip.DefaultCompression),
			handler:    jsonHandler(http.StatusOK),
			wantStatus: http.StatusOK,
			wantBody:   []byte(`{"fields":[],"data":[]}`),
		},
		{
			name:           "json compressed",
			compressor:     compressor.New(gzip.BestSpeed),
			handler:        jsonHandler(http.StatusOK),
			acceptEncoding: "gzip, deflate",
			wantStatus:     http.StatusOK,
			wantGzip:       true,
			wantBody:       []byte(`{"fields":[],"data":[]}`),
		},
		{
			name:           "status preserved",
			compressor:     compressor.New(gzip.BestSpeed),
			handler:        jsonHandler(http.StatusNotFound),
			acceptEncoding: "gzip",
			wantStatus:     http.StatusNotFound,
			wantGzip:       true,
			wantBody:       []byte(`{"fields":[],"data":[]}`),
		},
		{
			name:           "binary left alone",
			compressor:     compressor.New(gzip.BestSpeed),
			handler:        binaryHandler,
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       []byte{1, 2, 3},
		},
		{
			name:           "already encoded body compressed once",
			compressor:     compressor.New(gzip.BestSpeed),
			handler:        preEncoded,
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantGzip:       true,
			wantBody:       []byte("gophpowa_requests_total 1\n"),
		},
		{
			name:           "nil compressor disables",
			handler:        jsonHandler(http.StatusOK),
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantBody:       []byte(`{"fields":[],"data":[]}`),
		},
		{
			name:           "compression failure",
			compressor:     failingCompressor{},
			handler:        jsonHandler(http.StatusOK),
			acceptEncoding: "gzip",
			wantStatus:     http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := httptest.NewRecorder()

			GzipMiddleware(tt.compressor)(tt.handler).ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody == nil {
				return
			}

			body := w.Body.Bytes()
			if tt.wantGzip {
				assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
				gzr, err := gzip.NewReader(bytes.NewReader(body))
				require.NoError(t, err)
				body, err = io.ReadAll(gzr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, resp.Header.Get("Content-Encoding"))
			}
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
