package section

import (
	"fmt"

	"github.com/arloliu/gridzip/endian"
	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
)

// OffsetTable holds one byte offset per compressed hypercube block. Offsets
// are relative to the end of the table and are stored little-endian at the
// stream's word width, so a 32-bit stream spends 4 bytes per entry and a
// 64-bit stream 8.
type OffsetTable struct {
	width   format.Width
	offsets []uint64
}

// NewOffsetTable creates a table with n zero entries.
func NewOffsetTable(width format.Width, n int) *OffsetTable {
	return &OffsetTable{
		width:   width,
		offsets: make([]uint64, n),
	}
}

// Len returns the number of entries.
func (t *OffsetTable) Len() int {
	return len(t.offsets)
}

// Size returns the serialized size of the table in bytes.
func (t *OffsetTable) Size() int {
	return len(t.offsets) * t.width.Bytes()
}

// Set records the offset of block i.
func (t *OffsetTable) Set(i int, offset uint64) {
	t.offsets[i] = offset
}

// At returns the offset of block i.
func (t *OffsetTable) At(i int) uint64 {
	return t.offsets[i]
}

// WriteTo serializes the table into b, which must hold at least Size bytes.
func (t *OffsetTable) WriteTo(b []byte) {
	engine := endian.GetLittleEndianEngine()
	switch t.width {
	case format.Width32:
		for i, off := range t.offsets {
			engine.PutUint32(b[i*4:], uint32(off))
		}
	default:
		for i, off := range t.offsets {
			engine.PutUint64(b[i*8:], off)
		}
	}
}

// ParseOffsetTable reads an n-entry table of the given width from data.
func ParseOffsetTable(data []byte, width format.Width, n int) (*OffsetTable, error) {
	t := NewOffsetTable(width, n)
	if len(data) < t.Size() {
		return nil, fmt.Errorf("%w: offset table needs %d bytes, have %d", errs.ErrShortInput, t.Size(), len(data))
	}

	engine := endian.GetLittleEndianEngine()
	switch width {
	case format.Width32:
		for i := range t.offsets {
			t.offsets[i] = uint64(engine.Uint32(data[i*4:]))
		}
	default:
		for i := range t.offsets {
			t.offsets[i] = engine.Uint64(data[i*8:])
		}
	}

	return t, nil
}
