// Package compress provides the compression codecs used by region records
// and standalone document files.
//
// Region records carry a one-byte chunk version: version 1 is a gzip
// stream and version 2 is a zlib stream. ForChunkVersion maps a version to
// its codec; any other version has no codec and the record is treated as
// corrupt by the region package. New records are always written as zlib.
//
// Standalone document files may use any of the codecs below. Detect
// recognises each format from its magic bytes so readers need not be told
// which one was used:
//
//	| Type  | Magic                   |
//	|-------|-------------------------|
//	| Gzip  | 1f 8b                   |
//	| Zlib  | CMF/FLG pair, e.g. 78 9c |
//	| Zstd  | 28 b5 2f fd             |
//	| LZ4   | 04 22 4d 18             |
//	| S2    | ff 06 00 00 "S2sTwO"    |
//	| None  | anything else           |
//
// All codecs are safe for concurrent use; gzip and zlib writers and zstd
// encoders/decoders are pooled.
package compress
