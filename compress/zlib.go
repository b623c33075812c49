package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/anvil/format"
)

// ZlibCompressor produces zlib streams. Every record the region container
// writes is tagged with chunk version 2 and compressed by this codec.
type ZlibCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a zlib codec writing at the given level.
func NewZlibCompressor(level int) (*ZlibCompressor, error) {
	if err := validateLevel(level); err != nil {
		return nil, err
	}

	return &ZlibCompressor{
		level: level,
		writers: &sync.Pool{
			New: func() any {
				w, _ := zlib.NewWriterLevel(nil, level)
				return w
			},
		},
	}, nil
}

// Type returns format.CompressionZlib.
func (c *ZlibCompressor) Type() format.CompressionType {
	return format.CompressionZlib
}

// Level returns the deflate level used for compression.
func (c *ZlibCompressor) Level() int {
	return c.level
}

// Compress compresses data into a zlib stream.
func (c *ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, _ := c.writers.Get().(*zlib.Writer)
	defer c.writers.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a zlib stream, verifying its Adler-32 checksum.
func (c *ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	return out, nil
}
