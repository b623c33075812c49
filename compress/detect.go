package compress

import (
	"bytes"

	"github.com/arloliu/anvil/format"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	// https://github.com/klauspost/compress/blob/master/zstd/framedec.go
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic   = []byte("\xff\x06\x00\x00S2sTwO")
	snappyMag = []byte("\xff\x06\x00\x00sNaPpY")
)

// Detect identifies the compression of data from its leading magic bytes.
// Data that matches no known header is reported as format.CompressionNone.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return format.CompressionGzip
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic), bytes.HasPrefix(data, snappyMag):
		return format.CompressionS2
	case isZlibHeader(data):
		return format.CompressionZlib
	default:
		return format.CompressionNone
	}
}

// isZlibHeader checks the RFC 1950 CMF/FLG pair: deflate method, window
// size at most 32KiB and a header checksum divisible by 31.
func isZlibHeader(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	cmf, flg := data[0], data[1]

	return cmf&0x0f == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}
