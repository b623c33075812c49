// Package errs defines the sentinel errors shared by the anvil packages.
//
// Call sites wrap these with fmt.Errorf("...: %w", err) to add context;
// callers match them with errors.Is.
package errs

import "errors"

// Tag codec errors.
var (
	// ErrNotCompound is returned when a document root is not a Compound tag.
	ErrNotCompound = errors.New("root tag must be a named compound tag")
	// ErrUnknownTagKind is returned when a tag kind id outside 0-12 is requested.
	ErrUnknownTagKind = errors.New("unknown tag kind")
	// ErrTagKindMismatch is returned when a list receives an element of a different kind.
	ErrTagKindMismatch = errors.New("tag kind does not match list element kind")
	// ErrMalformedData is returned when encoded data violates the tag grammar.
	ErrMalformedData = errors.New("malformed tag data")
	// ErrMaxDepthExceeded is returned when nesting exceeds the configured decode depth.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrStringTooLong is returned when a string's modified UTF-8 form exceeds 65535 bytes.
	ErrStringTooLong = errors.New("encoded string exceeds 65535 bytes")
)

// Container errors.
var (
	// ErrCorruptRecord is returned when a stored record has an invalid sector
	// reference, an invalid length or an unknown compression version.
	ErrCorruptRecord = errors.New("corrupt record")
	// ErrOversizeChunk is returned when a record would need 255 or more sectors.
	ErrOversizeChunk = errors.New("chunk exceeds maximum sector count")
	// ErrOutOfBounds is returned for coordinates outside the 32x32 grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrChunkNotFound is returned when no record is stored at a coordinate.
	ErrChunkNotFound = errors.New("chunk not found")
	// ErrReadOnly is returned when writing to a container opened read-only.
	ErrReadOnly = errors.New("container is read-only")
	// ErrClosed is returned when using a container after Close.
	ErrClosed = errors.New("container is closed")
)

// Compression errors.
var (
	// ErrUnsupportedCompression is returned for compression types without a codec.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
