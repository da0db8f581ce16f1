// Package compress wraps the gzip container format used for curl request
// bodies.
package compress

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"time"
)

// gzip streams open with these two magic bytes.
const (
	magic0 = 0x1f
	magic1 = 0x8b
)

// Gzip compresses data at the default level with a zeroed header, so output
// bytes are stable for a given input.
func Gzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return buf.Bytes(), nil
}

// GzipStamped compresses data with header metadata set. The name and
// modification time land in the gzip header, so two calls with different
// times produce different bytes that decompress identically.
func GzipStamped(data []byte, name string, modTime time.Time, level int) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("compress: invalid level %d: %w", level, err)
	}
	w.Name = name
	w.ModTime = modTime
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return buf.Bytes(), nil
}

// Gunzip decompresses a gzip stream held in memory.
func Gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("compress: failed to create gzip reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("compress: failed to decompress data: %w", err)
	}
	return out, nil
}

// IsGzip reports whether data opens with the gzip magic bytes.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == magic0 && data[1] == magic1
}
