package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		opts []Opt
	}{
		{name: "no options"},
		{name: "max open conns", opts: []Opt{WithMaxOpenConns(0, 7)}},
		{name: "max idle conns", opts: []Opt{WithMaxIdleConns(4)}},
		{name: "conn max lifetime", opts: []Opt{WithConnMaxLifetime(-time.Second, 30*time.Second)}},
		{
			name: "multiple options",
			opts: []Opt{
				WithMaxOpenConns(20),
				WithMaxIdleConns(5),
				WithConnMaxLifetime(time.Minute),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := New(context.Background(), DriverSQLite, ":memory:", tt.opts...)
			require.NoError(t, err)
			defer conn.Close()

			assert.NoError(t, conn.PingContext(context.Background()))
		})
	}
}

func TestWithMaxOpenConns_Applied(t *testing.T) {
	conn, err := New(context.Background(), DriverSQLite, ":memory:", WithMaxOpenConns(3))
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, 3, conn.Stats().MaxOpenConnections)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), "nope", "dsn")
	assert.Error(t, err)
}

func TestMigrate_SQLite(t *testing.T) {
	dir := t.TempDir()
	migration := `-- +goose Up
CREATE TABLE probe (id INTEGER PRIMARY KEY);

-- +goose Down
DROP TABLE probe;
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "00001_probe.sql"), []byte(migration), 0o600))

	conn, err := New(context.Background(), DriverSQLite, filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(conn, dir))

	var n int
	require.NoError(t, conn.Get(&n, `SELECT count(*) FROM probe`))
	assert.Equal(t, 0, n)
}
