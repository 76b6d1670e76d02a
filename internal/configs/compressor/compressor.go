// Package compressor handles gzip for HTTP responses and seed files.
package compressor

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Compressor gzips byte slices at a fixed level.
type Compressor struct {
	level int
}

// New creates a Compressor. An out-of-range level falls back to the gzip default.
func New(level int) *Compressor {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}
	return &Compressor{level: level}
}

// Compress gzips data.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gzw, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := gzw.Write(data); err != nil {
		_ = gzw.Close()
		return nil, err
	}
	if err := gzw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Open opens path for reading. Files ending in .gz are decompressed on the fly.
// Errors from os.Open are returned unwrapped.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gzr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipFile{Reader: gzr, file: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.file.Close(); err == nil {
		err = ferr
	}
	return err
}
