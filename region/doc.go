// Package region stores independently compressed chunk records in region
// files.
//
// A region file holds a 32x32 grid of chunk slots in 4096-byte sectors:
//
//	sector 0      offset table     1024 x u32  (sector<<8 | count)
//	sector 1      timestamp table  1024 x u32  (seconds since epoch)
//	sector 2..    records          u32 length, u8 version, compressed bytes
//
// The slot for local coordinates (x, z) is entry x + z*32 in both tables.
// Free space is tracked with a sector bitmap rebuilt on Open and allocated
// first-fit; the file only grows when no free run is large enough.
//
// A File is not safe for concurrent use and assumes it is the only handle
// to its path. Read never fails: corruption and I/O errors are logged and
// reported as an absent chunk. ReadChunk returns the underlying error.
package region
