package region

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/anvil/compress"
	"github.com/arloliu/anvil/endian"
	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/internal/options"
)

// File is an open region file.
type File struct {
	path string
	file *os.File

	offsets    [ChunkSlots]OffsetEntry
	timestamps [ChunkSlots]uint32

	// free[i] reports whether sector i holds no live record. Its length is
	// the sector count of the file.
	free []bool

	salvage SalvageReport
	closed  bool

	readOnly bool
	log      *zap.Logger
	now      func() time.Time
	codec    compress.Codec
	engine   endian.EndianEngine
}

// SalvageReport describes repairs Open made to bring the file into shape.
type SalvageReport struct {
	Created           bool  // Created is set when the file did not exist.
	HeaderInitialized bool  // HeaderInitialized is set when the header tables were zero-filled.
	PaddedBytes       int64 // PaddedBytes counts zeros appended to reach a whole sector.
}

// Repaired reports whether Open changed the file in any way.
func (s SalvageReport) Repaired() bool {
	return s.Created || s.HeaderInitialized || s.PaddedBytes > 0
}

// SectorStats summarizes sector usage.
type SectorStats struct {
	Total    int // Total sectors in the file, header included.
	Occupied int // Occupied sectors: header plus live records.
	Free     int // Free sectors available for reuse.
}

// Open opens the region file at path, creating it when it does not exist.
//
// A file shorter than the two header sectors gets zero-filled header tables,
// and a file whose length is not a whole number of sectors is zero-padded to
// the next sector boundary. Offset entries pointing into the header or past
// the end of the file are kept but own no sectors and never read successfully.
func Open(path string, opts ...Option) (*File, error) {
	f := &File{
		path:   path,
		log:    zap.NewNop(),
		now:    time.Now,
		codec:  mustDefaultCodec(),
		engine: endian.GetBigEndianEngine(),
	}
	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}
	f.log = f.log.With(zap.String("path", path))

	var err error
	if f.readOnly {
		f.file, err = os.Open(path)
	} else {
		f.file, err = f.openOrCreate()
	}
	if err != nil {
		return nil, fmt.Errorf("open region file: %w", err)
	}

	if err := f.load(); err != nil {
		_ = f.file.Close()
		return nil, fmt.Errorf("load region file %s: %w", path, err)
	}

	return f, nil
}

func mustDefaultCodec() compress.Codec {
	codec, err := compress.GetCodec(format.CompressionZlib)
	if err != nil {
		panic(err)
	}

	return codec
}

func (f *File) openOrCreate() (*os.File, error) {
	file, err := os.OpenFile(f.path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec
	if err == nil {
		f.salvage.Created = true
		f.log.Debug("region file created")

		return file, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return nil, err
	}

	return os.OpenFile(f.path, os.O_RDWR, 0o644) //nolint:gosec
}

func (f *File) load() error {
	info, err := f.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()

	if !f.readOnly {
		if size, err = f.repair(size); err != nil {
			return err
		}
	}

	header := make([]byte, headerSize)
	if _, err := f.file.ReadAt(header, 0); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	sectors := max(int((size+SectorSize-1)/SectorSize), HeaderSectors)
	f.free = make([]bool, sectors)
	for i := HeaderSectors; i < sectors; i++ {
		f.free[i] = true
	}

	for i := range ChunkSlots {
		entry := OffsetEntry(f.engine.Uint32(header[i*4:]))
		f.offsets[i] = entry
		f.timestamps[i] = f.engine.Uint32(header[timestampTableOffset+i*4:])

		if entry.IsZero() {
			continue
		}
		if entry.Sector() < HeaderSectors {
			f.log.Warn("offset entry points into header",
				zap.Int("x", i%ChunksPerAxis), zap.Int("z", i/ChunksPerAxis),
				zap.Int("sector", entry.Sector()), zap.Int("count", entry.Count()))

			continue
		}
		if entry.Sector()+entry.Count() > sectors {
			f.log.Warn("offset entry points past end of file",
				zap.Int("x", i%ChunksPerAxis), zap.Int("z", i/ChunksPerAxis),
				zap.Int("sector", entry.Sector()), zap.Int("count", entry.Count()))

			continue
		}
		f.markRange(entry.Sector(), entry.Count(), false)
	}

	return nil
}

// repair zero-fills a missing header and pads a partial trailing sector.
// It returns the new file size.
func (f *File) repair(size int64) (int64, error) {
	if size < headerSize {
		if _, err := f.file.WriteAt(make([]byte, headerSize), 0); err != nil {
			return 0, err
		}
		if !f.salvage.Created {
			f.log.Warn("region header initialized", zap.Int64("length", size))
		}
		f.salvage.HeaderInitialized = true
		size = headerSize
	}

	if rem := size % SectorSize; rem != 0 {
		pad := SectorSize - rem
		if err := f.file.Truncate(size + pad); err != nil {
			return 0, err
		}
		f.log.Warn("region file padded to sector boundary",
			zap.Int64("length", size), zap.Int64("padding", pad))
		f.salvage.PaddedBytes = pad
		size += pad
	}

	return size, nil
}

// Close releases the file handle. Closing an already closed File is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	return f.file.Close()
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Has reports whether a record is stored at (x, z). Out-of-range
// coordinates report false.
func (f *File) Has(x, z int) bool {
	i := slot(x, z)
	if i < 0 {
		return false
	}

	return !f.offsets[i].IsZero()
}

// Offset returns the offset entry for (x, z), or zero when out of range.
func (f *File) Offset(x, z int) OffsetEntry {
	i := slot(x, z)
	if i < 0 {
		return 0
	}

	return f.offsets[i]
}

// Timestamp returns when (x, z) was last written, or the zero Time when it
// never was or the coordinates are out of range.
func (f *File) Timestamp(x, z int) time.Time {
	i := slot(x, z)
	if i < 0 || f.timestamps[i] == 0 {
		return time.Time{}
	}

	return time.Unix(int64(f.timestamps[i]), 0)
}

// Chunks iterates the coordinates of stored records in table order.
func (f *File) Chunks() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, entry := range f.offsets {
			if entry.IsZero() {
				continue
			}
			if !yield(i%ChunksPerAxis, i/ChunksPerAxis) {
				return
			}
		}
	}
}

// SectorStats counts total, occupied and free sectors.
func (f *File) SectorStats() SectorStats {
	stats := SectorStats{Total: len(f.free)}
	for _, free := range f.free {
		if free {
			stats.Free++
		}
	}
	stats.Occupied = stats.Total - stats.Free

	return stats
}

// Salvage reports the repairs Open made.
func (f *File) Salvage() SalvageReport {
	return f.salvage
}

func (f *File) checkOpen() error {
	if f.closed {
		return errs.ErrClosed
	}

	return nil
}
