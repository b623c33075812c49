package compress

import (
	"fmt"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
)

// Compressor compresses a complete record or document in one call.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified or retained
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Error conditions:
//   - Returns error if input data is corrupted or truncated
//   - Returns error if data was compressed with a different algorithm
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	// Type reports the compression type the codec produces and accepts.
	Type() format.CompressionType
}

// CreateCodec creates a Codec for compressionType at the given level.
//
// The level is interpreted by gzip and zlib (-2 to 9, -1 meaning default);
// the other algorithms ignore it.
func CreateCodec(compressionType format.CompressionType, level int) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(level)
	case format.CompressionZlib:
		return NewZlibCompressor(level)
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: mustCodec(NewGzipCompressor(DefaultLevel)),
	format.CompressionZlib: mustCodec(NewZlibCompressor(DefaultLevel)),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

func mustCodec(c Codec, err error) Codec {
	if err != nil {
		panic(fmt.Sprintf("failed to create builtin codec: %v", err))
	}

	return c
}

// GetCodec retrieves the built-in, default-level Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// ForChunkVersion returns the codec that decodes records tagged with v.
func ForChunkVersion(v format.ChunkVersion) (Codec, error) {
	ct, ok := v.Compression()
	if !ok {
		return nil, fmt.Errorf("%w: chunk version %d", errs.ErrUnsupportedCompression, v)
	}

	return GetCodec(ct)
}
