package compressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressor_Compress(t *testing.T) {
	tests := []struct {
		name  string
		level int
		data  []byte
	}{
		{name: "default level", level: gzip.DefaultCompression, data: []byte(`{"data":[]}`)},
		{name: "best speed", level: gzip.BestSpeed, data: bytes.Repeat([]byte("powa"), 100)},
		{name: "invalid level falls back", level: 42, data: []byte("x")},
		{name: "empty input", level: gzip.BestCompression, data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(tt.level).Compress(tt.data)
			require.NoError(t, err)

			gzr, err := gzip.NewReader(bytes.NewReader(out))
			require.NoError(t, err)
			plain, err := io.ReadAll(gzr)
			require.NoError(t, err)
			assert.Equal(t, len(tt.data), len(plain))
			assert.True(t, bytes.Equal(tt.data, plain))
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	content := []byte("line1\nline2\n")

	plainPath := filepath.Join(dir, "seed.jsonl")
	require.NoError(t, os.WriteFile(plainPath, content, 0o600))

	gz, err := New(gzip.DefaultCompression).Compress(content)
	require.NoError(t, err)
	gzPath := filepath.Join(dir, "seed.jsonl.gz")
	require.NoError(t, os.WriteFile(gzPath, gz, 0o600))

	badPath := filepath.Join(dir, "bad.gz")
	require.NoError(t, os.WriteFile(badPath, content, 0o600))

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		notFound bool
	}{
		{name: "plain file", path: plainPath},
		{name: "gzip file", path: gzPath},
		{name: "corrupt gzip", path: badPath, wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "nope"), wantErr: true, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := Open(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.notFound, os.IsNotExist(err))
				return
			}
			require.NoError(t, err)
			defer rc.Close()

			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, content, got)
		})
	}
}
