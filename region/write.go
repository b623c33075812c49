package region

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/internal/pool"
)

// Write compresses data with zlib and stores it at (x, z), replacing any
// previous record, and stamps the slot with the current time.
//
// A record needing MaxRecordSectors sectors or more after compression is
// rejected with errs.ErrOversizeChunk and nothing changes. The record is
// overwritten in place when its sector count is unchanged; otherwise it
// moves to the first free run that fits, or to new sectors appended to the
// file. The caller keeps ownership of data.
func (f *File) Write(x, z int, data []byte) error {
	if err := f.checkWritable(x, z); err != nil {
		return err
	}

	compressed, err := f.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("compress chunk (%d, %d): %w", x, z, err)
	}

	return f.writeRecord(x, z, format.ChunkVersionZlib, compressed)
}

// WriteRaw stores an already compressed record at (x, z) with the given
// version byte. It follows the same allocation rules as Write.
func (f *File) WriteRaw(x, z int, version format.ChunkVersion, payload []byte) error {
	if err := f.checkWritable(x, z); err != nil {
		return err
	}

	return f.writeRecord(x, z, version, payload)
}

func (f *File) checkWritable(x, z int) error {
	if err := f.checkOpen(); err != nil {
		return err
	}
	if f.readOnly {
		return errs.ErrReadOnly
	}
	if slot(x, z) < 0 {
		return fmt.Errorf("%w: (%d, %d)", errs.ErrOutOfBounds, x, z)
	}

	return nil
}

func (f *File) writeRecord(x, z int, version format.ChunkVersion, payload []byte) error {
	i := slot(x, z)
	needed := sectorsNeeded(len(payload))
	if needed >= MaxRecordSectors {
		f.log.Warn("chunk too large",
			zap.Int("x", x), zap.Int("z", z), zap.Int("length", len(payload)), zap.Int("count", needed))

		return fmt.Errorf("%w: chunk (%d, %d) needs %d sectors", errs.ErrOversizeChunk, x, z, needed)
	}

	var header [RecordHeaderSize]byte
	f.engine.PutUint32(header[:4], uint32(len(payload)+1)) //nolint:gosec
	header[4] = byte(version)

	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)
	buf.Grow(len(header) + len(payload))
	_, _ = buf.Write(header[:])
	_, _ = buf.Write(payload)

	// Entries aimed at the header or past the end of the file own nothing.
	old := f.offsets[i]
	oldInRange := old.Sector() >= HeaderSectors && old.Sector()+old.Count() <= len(f.free)

	if oldInRange && old.Count() == needed {
		if err := f.writeAt(buf.Bytes(), old.Sector()); err != nil {
			return f.writeFailed(x, z, fmt.Errorf("write chunk (%d, %d): %w", x, z, err))
		}

		return f.stampChunk(x, z, i)
	}

	if oldInRange {
		f.markRange(old.Sector(), old.Count(), true)
	}

	start, found := f.findFree(needed)
	if !found {
		start = len(f.free)
		if err := f.grow(needed); err != nil {
			if oldInRange {
				f.markRange(old.Sector(), old.Count(), false)
			}

			return f.writeFailed(x, z, fmt.Errorf("grow region file for chunk (%d, %d): %w", x, z, err))
		}
	}
	f.log.Debug("chunk sectors allocated",
		zap.Int("x", x), zap.Int("z", z), zap.Int("sector", start), zap.Int("count", needed),
		zap.Bool("appended", !found))

	if err := f.writeAt(buf.Bytes(), start); err != nil {
		if oldInRange {
			f.markRange(old.Sector(), old.Count(), false)
		}

		return f.writeFailed(x, z, fmt.Errorf("write chunk (%d, %d): %w", x, z, err))
	}
	f.markRange(start, needed, false)

	if err := f.setOffset(i, NewOffsetEntry(start, needed)); err != nil {
		return f.writeFailed(x, z, fmt.Errorf("update offset of chunk (%d, %d): %w", x, z, err))
	}

	return f.stampChunk(x, z, i)
}

func (f *File) stampChunk(x, z, i int) error {
	if err := f.stamp(i); err != nil {
		return f.writeFailed(x, z, fmt.Errorf("chunk (%d, %d): %w", x, z, err))
	}

	return nil
}

// writeFailed logs an I/O failure of a chunk write and returns err.
func (f *File) writeFailed(x, z int, err error) error {
	f.log.Warn("chunk write failed", zap.Int("x", x), zap.Int("z", z), zap.Error(err))

	return err
}

func (f *File) writeAt(record []byte, sector int) error {
	_, err := f.file.WriteAt(record, int64(sector)*SectorSize)
	return err
}

func (f *File) setOffset(i int, entry OffsetEntry) error {
	f.offsets[i] = entry

	return f.writeTableEntry(int64(i)*4, uint32(entry))
}

func (f *File) stamp(i int) error {
	ts := uint32(f.now().Unix()) //nolint:gosec
	f.timestamps[i] = ts

	if err := f.writeTableEntry(timestampTableOffset+int64(i)*4, ts); err != nil {
		return fmt.Errorf("update timestamp: %w", err)
	}

	return nil
}

func (f *File) writeTableEntry(pos int64, v uint32) error {
	var b [4]byte
	f.engine.PutUint32(b[:], v)
	_, err := f.file.WriteAt(b[:], pos)

	return err
}

// grow appends n zeroed sectors to the file and to the bitmap as free.
func (f *File) grow(n int) error {
	size := int64(len(f.free)+n) * SectorSize
	if err := f.file.Truncate(size); err != nil {
		return err
	}
	for range n {
		f.free = append(f.free, true)
	}

	return nil
}

// findFree returns the start of the first run of n free sectors.
func (f *File) findFree(n int) (int, bool) {
	run := 0
	for i, free := range f.free {
		if !free {
			run = 0
			continue
		}
		run++
		if run == n {
			return i - n + 1, true
		}
	}

	return 0, false
}

func (f *File) markRange(start, count int, free bool) {
	for i := start; i < start+count && i < len(f.free); i++ {
		f.free[i] = free
	}
}
