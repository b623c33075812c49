// Package anvil reads and writes chunk-based world storage: tagged binary
// documents kept as independently compressed records inside region files.
//
// # Core Features
//
//   - Tag model with 13 kinds, recursive codec and pretty printer (package nbt)
//   - Region files of 4096-byte sectors holding a 32x32 grid of chunk records
//     with first-fit space reuse (package region)
//   - Corruption-tolerant reads: damaged records read as absent and are logged
//   - Gzip and zlib chunk records, plus zstd, S2 and LZ4 for standalone
//     documents (package compress)
//   - LRU cache of open region files addressed by world chunk coordinates
//
// # Basic Usage
//
// Storing a chunk document:
//
//	import "github.com/arloliu/anvil"
//
//	f, _ := region.Open("world/region/r.0.0.mca")
//	defer f.Close()
//
//	level := nbt.NewCompound("Level").
//	    Put(nbt.NewInt("xPos", 3)).
//	    Put(nbt.NewInt("zPos", 7))
//	root := nbt.NewCompound("").Put(level)
//
//	_ = anvil.WriteDocument(f, 3, 7, root)
//
// Reading it back:
//
//	root, err := anvil.ReadDocument(f, 3, 7)
//	if errors.Is(err, errs.ErrChunkNotFound) {
//	    // never written, or unreadable
//	}
//	level, _ := root.GetCompound("Level")
//
// # Package Structure
//
// This package provides convenient top-level wrappers that compose the region
// and nbt packages for the common chunk round trip. Use those packages
// directly for finer control.
package anvil

import (
	"bytes"
	"fmt"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/internal/hash"
	"github.com/arloliu/anvil/internal/pool"
	"github.com/arloliu/anvil/nbt"
)

// ChunkReader reads decompressed chunk records. *region.File and
// *region.Cache implement it.
type ChunkReader interface {
	Read(x, z int) ([]byte, bool)
}

// ChunkWriter stores chunk records. *region.File and *region.Cache
// implement it.
type ChunkWriter interface {
	Write(x, z int, data []byte) error
}

// ReadDocument reads the record at (x, z) and parses it as a document.
//
// An absent or unreadable record fails with errs.ErrChunkNotFound; a record
// that does not hold a valid document fails with the parse error.
func ReadDocument(r ChunkReader, x, z int, opts ...nbt.DecodeOption) (*nbt.Compound, error) {
	data, ok := r.Read(x, z)
	if !ok {
		return nil, fmt.Errorf("%w: (%d, %d)", errs.ErrChunkNotFound, x, z)
	}

	root, err := nbt.ParseDocument(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("chunk (%d, %d): %w", x, z, err)
	}

	return root, nil
}

// WriteDocument serializes root and stores it as the record at (x, z).
// The root must be a Compound.
func WriteDocument(w ChunkWriter, x, z int, root nbt.Tag) error {
	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	if err := nbt.SerializeDocument(root, buf); err != nil {
		return err
	}

	return w.Write(x, z, buf.Bytes())
}

// Digest returns the xxHash64 digest of a decompressed chunk record.
//
// Digests identify a chunk's content independently of how it was
// compressed, so two region files can be compared record by record.
func Digest(data []byte) uint64 {
	return hash.Sum(data)
}
