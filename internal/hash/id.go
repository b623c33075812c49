package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 digest of a record's decompressed bytes.
// Digests let two region files be compared chunk by chunk without diffing
// the compressed payloads, which differ whenever the compression level does.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumString computes the xxHash64 digest of s.
func SumString(s string) uint64 {
	return xxhash.Sum64String(s)
}
