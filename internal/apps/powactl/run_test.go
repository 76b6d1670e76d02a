package powactl

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	httpFacades "github.com/sbilibin2017/gophpowa/internal/facades/http"
	grpcHandlers "github.com/sbilibin2017/gophpowa/internal/handlers/grpc"
	"github.com/sbilibin2017/gophpowa/internal/models"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/server/1/metrics/databases_globals/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"group":"databases_globals","entity":{"srvid":1},"fields":[],"data":[{"ts":1704067200,"calls":2}]}`))
	})
	mux.HandleFunc("/server/1/metrics/by_databases/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"group":"by_databases","fields":[],"data":[]}`))
	})
	mux.HandleFunc("/server/2/metrics/databases_globals/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server 2 not available", http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_HTTP(t *testing.T) {
	api := newAPI(t)

	tests := []struct {
		name     string
		cfg      Config
		contains string
		wantErr  error
	}{
		{
			name:     "ping",
			cfg:      Config{Address: api.URL},
			contains: "ok",
		},
		{
			name:     "series",
			cfg:      Config{Address: api.URL, Group: "databases_globals", ServerID: 1},
			contains: `"calls": 2`,
		},
		{
			name:     "ranking",
			cfg:      Config{Address: api.URL, Group: "by_databases", ServerID: 1},
			contains: `"group": "by_databases"`,
		},
		{
			name:    "not available",
			cfg:     Config{Address: api.URL, Group: "databases_globals", ServerID: 2},
			wantErr: models.ErrNotAvailable,
		},
		{
			name:    "unknown group",
			cfg:     Config{Address: api.URL, Group: "nope", ServerID: 1},
			wantErr: models.ErrUnknownGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), &tt.cfg, &out)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.contains)
		})
	}
}

func TestRun_HTTPStatusError(t *testing.T) {
	api := newAPI(t)
	err := Run(context.Background(), &Config{Address: api.URL, Group: "databases_globals", ServerID: 2}, &bytes.Buffer{})

	var se *httpFacades.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestRun_InvalidAddress(t *testing.T) {
	err := Run(context.Background(), &Config{Address: "ftp://host:1"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_GRPCHealth(t *testing.T) {
	tests := []struct {
		name    string
		serving bool
		want    string
		wantErr bool
	}{
		{name: "serving", serving: true, want: "SERVING\n"},
		{name: "not serving", serving: false, want: "NOT_SERVING\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lis, err := net.Listen("tcp", "127.0.0.1:0")
			require.NoError(t, err)

			health := grpcHandlers.NewHealthHandler()
			health.SetServing(tt.serving)
			gs := grpc.NewServer()
			health.Register(gs)
			go func() { _ = gs.Serve(lis) }()
			t.Cleanup(gs.Stop)

			var out bytes.Buffer
			cfg := &Config{Address: "grpc://" + lis.Addr().String(), Timeout: 5 * time.Second}
			err = Run(context.Background(), cfg, &out)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, out.String())
		})
	}
}
