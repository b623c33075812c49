package format

type (
	TagKind         uint8
	CompressionType uint8
	ChunkVersion    uint8
)

// Tag kinds. The numeric ids are part of the wire format and never change.
const (
	TagEnd       TagKind = 0
	TagByte      TagKind = 1
	TagShort     TagKind = 2
	TagInt       TagKind = 3
	TagLong      TagKind = 4
	TagFloat     TagKind = 5
	TagDouble    TagKind = 6
	TagByteArray TagKind = 7
	TagString    TagKind = 8
	TagList      TagKind = 9
	TagCompound  TagKind = 10
	TagIntArray  TagKind = 11
	TagLongArray TagKind = 12
)

// MaxTagKind is the largest valid tag kind id.
const MaxTagKind = TagLongArray

var tagKindNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

// Valid reports whether k is one of the 13 known kinds.
func (k TagKind) Valid() bool {
	return k <= MaxTagKind
}

func (k TagKind) String() string {
	if !k.Valid() {
		return "Unknown"
	}

	return tagKindNames[k]
}

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents uncompressed data.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents a gzip stream (RFC 1952).
	CompressionZlib CompressionType = 0x3 // CompressionZlib represents a zlib stream (RFC 1950).
	CompressionZstd CompressionType = 0x4 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x5 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x6 // CompressionLZ4 represents an LZ4 frame.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Chunk versions stored in the byte following a record's length prefix.
const (
	ChunkVersionGzip ChunkVersion = 1 // ChunkVersionGzip marks a gzip-compressed record.
	ChunkVersionZlib ChunkVersion = 2 // ChunkVersionZlib marks a zlib-compressed record; used for every new write.
)

// Compression returns the compression type a chunk version denotes.
// The second result is false for versions the container does not understand.
func (v ChunkVersion) Compression() (CompressionType, bool) {
	switch v {
	case ChunkVersionGzip:
		return CompressionGzip, true
	case ChunkVersionZlib:
		return CompressionZlib, true
	default:
		return 0, false
	}
}

func (v ChunkVersion) String() string {
	switch v {
	case ChunkVersionGzip:
		return "Gzip"
	case ChunkVersionZlib:
		return "Zlib"
	default:
		return "Unknown"
	}
}
