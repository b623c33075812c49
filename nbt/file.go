package nbt

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arloliu/anvil/compress"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/internal/pool"
)

// Encode serializes root and compresses the result with compression.
// Use format.CompressionNone for a bare document.
func Encode(root Tag, compression format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	if err := SerializeDocument(root, buf); err != nil {
		return nil, err
	}

	// The no-op codec returns its input, which belongs to the pool.
	if codec.Type() == format.CompressionNone {
		return bytes.Clone(buf.Bytes()), nil
	}

	return codec.Compress(buf.Bytes())
}

// Decode parses a document that is either bare or compressed with any
// algorithm compress.Detect recognizes.
func Decode(data []byte, opts ...DecodeOption) (*Compound, error) {
	codec, err := compress.GetCodec(compress.Detect(data))
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s document: %w", codec.Type(), err)
	}

	return ParseDocument(bytes.NewReader(raw), opts...)
}

// ReadFile reads and decodes a standalone document file such as level.dat.
func ReadFile(path string, opts ...DecodeOption) (*Compound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return root, nil
}

// WriteFile encodes root and writes it to path, replacing any existing file.
func WriteFile(path string, root Tag, compression format.CompressionType) error {
	data, err := Encode(root, compression)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
