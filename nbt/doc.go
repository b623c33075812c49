// Package nbt implements the tagged binary document format used by chunk
// records and standalone world files.
//
// A document is a tree of Tags rooted at a named Compound. All multi-byte
// values are big-endian and strings are stored in modified UTF-8 behind a
// 16-bit byte length:
//
//	named tag := kind:u8 [name:utf payload]   (End has neither)
//	Compound  := named tag* End
//	List      := elemKind:u8 count:i32 payload*
//	arrays    := count:i32 element*
//
// ParseDocument and SerializeDocument work on bare streams. Decode, Encode,
// ReadFile and WriteFile additionally handle whole-document compression.
package nbt
