// Package endian provides the byte order engine used for every on-disk field.
//
// Tag payloads, string length prefixes, region header tables and record
// length prefixes are all big-endian. The EndianEngine interface combines
// binary.ByteOrder and binary.AppendByteOrder so encoders can either patch
// fixed-size slots in place or append to a growing buffer:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, entry)     // append
//	engine.PutUint32(table[i*4:], entry)      // patch in place
//
// All functions and methods in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
//
// Nothing on disk is little-endian; it exists for tests that need to prove
// a decoder does not silently accept the wrong byte order.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
