package region

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/anvil/compress"
	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
)

// Read returns the decompressed record stored at (x, z).
//
// Read never returns an error. Out-of-range coordinates, empty slots,
// corrupt records and I/O failures all report (nil, false); everything but
// the first two is logged at warn level. Use ReadChunk to see why a record
// could not be read.
func (f *File) Read(x, z int) ([]byte, bool) {
	data, err := f.ReadChunk(x, z)
	if err != nil {
		if !errors.Is(err, errs.ErrChunkNotFound) && !errors.Is(err, errs.ErrOutOfBounds) {
			f.log.Warn("chunk unreadable", zap.Int("x", x), zap.Int("z", z), zap.Error(err))
		}

		return nil, false
	}

	return data, true
}

// ReadChunk returns the decompressed record stored at (x, z).
//
// It fails with errs.ErrOutOfBounds for coordinates outside the grid,
// errs.ErrChunkNotFound for an empty slot and errs.ErrCorruptRecord when the
// offset entry, length prefix, version byte or compressed bytes are invalid.
func (f *File) ReadChunk(x, z int) ([]byte, error) {
	version, payload, err := f.readRecord(x, z)
	if err != nil {
		return nil, err
	}

	codec, err := compress.ForChunkVersion(version)
	if err != nil {
		return nil, fmt.Errorf("%w: chunk (%d, %d): %w", errs.ErrCorruptRecord, x, z, err)
	}

	data, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: chunk (%d, %d): %s: %w", errs.ErrCorruptRecord, x, z, version, err)
	}

	return data, nil
}

// ReadRaw returns the compressed record stored at (x, z) together with its
// version byte, without decompressing it.
func (f *File) ReadRaw(x, z int) (format.ChunkVersion, []byte, error) {
	return f.readRecord(x, z)
}

func (f *File) readRecord(x, z int) (format.ChunkVersion, []byte, error) {
	if err := f.checkOpen(); err != nil {
		return 0, nil, err
	}

	i := slot(x, z)
	if i < 0 {
		return 0, nil, fmt.Errorf("%w: (%d, %d)", errs.ErrOutOfBounds, x, z)
	}

	entry := f.offsets[i]
	if entry.IsZero() {
		return 0, nil, fmt.Errorf("%w: (%d, %d)", errs.ErrChunkNotFound, x, z)
	}
	if entry.Sector()+entry.Count() > len(f.free) {
		return 0, nil, fmt.Errorf("%w: chunk (%d, %d): sectors %d+%d past end of file (%d sectors)",
			errs.ErrCorruptRecord, x, z, entry.Sector(), entry.Count(), len(f.free))
	}

	pos := int64(entry.Sector()) * SectorSize
	var header [RecordHeaderSize]byte
	if _, err := f.file.ReadAt(header[:], pos); err != nil {
		return 0, nil, fmt.Errorf("read chunk (%d, %d) header: %w", x, z, err)
	}

	length := int(f.engine.Uint32(header[:4]))
	if length == 0 || length > entry.Count()*SectorSize {
		return 0, nil, fmt.Errorf("%w: chunk (%d, %d): length %d does not fit %d sectors",
			errs.ErrCorruptRecord, x, z, length, entry.Count())
	}

	payload := make([]byte, length-1)
	if _, err := f.file.ReadAt(payload, pos+RecordHeaderSize); err != nil {
		return 0, nil, fmt.Errorf("read chunk (%d, %d) payload: %w", x, z, err)
	}

	return format.ChunkVersion(header[4]), payload, nil
}
