package region

const (
	SectorSize    = 4096 // SectorSize is the allocation unit of a region file.
	ChunksPerAxis = 32   // ChunksPerAxis is the width and depth of the slot grid.
	ChunkSlots    = ChunksPerAxis * ChunksPerAxis

	// HeaderSectors is the number of sectors taken by the offset and
	// timestamp tables.
	HeaderSectors = 2
	headerSize    = HeaderSectors * SectorSize

	// RecordHeaderSize is the u32 length plus the u8 version byte in front
	// of every stored record.
	RecordHeaderSize = 5

	// MaxRecordSectors is the exclusive upper bound on sectors per record.
	// The count field of an offset entry is 8 bits wide.
	MaxRecordSectors = 255

	timestampTableOffset = SectorSize
)

// OffsetEntry locates one slot's record.
//
// Layout (big-endian u32):
//
//	bits 8-31: first sector of the record
//	bits 0-7:  number of sectors allocated to it
//
// A zero entry means the slot is empty.
type OffsetEntry uint32

// NewOffsetEntry packs a sector index and count.
func NewOffsetEntry(sector int, count int) OffsetEntry {
	return OffsetEntry(uint32(sector)<<8 | uint32(count)&0xff) //nolint:gosec
}

// Sector returns the first sector of the record.
func (e OffsetEntry) Sector() int {
	return int(e >> 8)
}

// Count returns the number of sectors allocated to the record.
func (e OffsetEntry) Count() int {
	return int(e & 0xff)
}

// IsZero reports whether the slot is empty.
func (e OffsetEntry) IsZero() bool {
	return e == 0
}

// slot maps local coordinates to a table index, or -1 when out of range.
func slot(x, z int) int {
	if x < 0 || x >= ChunksPerAxis || z < 0 || z >= ChunksPerAxis {
		return -1
	}

	return x + z*ChunksPerAxis
}

// sectorsNeeded returns how many sectors a record with n compressed bytes
// occupies, header included.
func sectorsNeeded(n int) int {
	return max(1, (n+RecordHeaderSize+SectorSize-1)/SectorSize)
}
