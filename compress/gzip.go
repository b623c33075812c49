package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/arloliu/anvil/format"
)

// GzipCompressor produces gzip streams. Region records tagged with chunk
// version 1 and standalone document files use this format.
type GzipCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*GzipCompressor)(nil)

// NewGzipCompressor creates a gzip codec writing at the given level.
func NewGzipCompressor(level int) (*GzipCompressor, error) {
	if err := validateLevel(level); err != nil {
		return nil, err
	}

	return &GzipCompressor{
		level: level,
		writers: &sync.Pool{
			New: func() any {
				// level was validated above
				w, _ := gzip.NewWriterLevel(nil, level)
				return w
			},
		},
	}, nil
}

// Type returns format.CompressionGzip.
func (c *GzipCompressor) Type() format.CompressionType {
	return format.CompressionGzip
}

// Compress compresses data into a single gzip member.
func (c *GzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, _ := c.writers.Get().(*gzip.Writer)
	defer c.writers.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a gzip stream.
func (c *GzipCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return out, nil
}
