// Package stream adapts io.Reader and io.Writer to the fixed-width,
// big-endian primitives the tag codec is built on.
//
// Every multi-byte value is big-endian and signed values are two's
// complement. Strings are length-prefixed with an unsigned 16-bit byte count
// and encoded in modified UTF-8:
//
//   - U+0001..U+007F encode as one byte
//   - U+0000 and U+0080..U+07FF encode as two bytes (110xxxxx 10xxxxxx)
//   - every other UTF-16 code unit encodes as three bytes
//     (1110xxxx 10xxxxxx 10xxxxxx); code points above U+FFFF are first
//     split into a surrogate pair, so they take six bytes
//
// The encoded form of a string may not exceed 65535 bytes.
package stream
