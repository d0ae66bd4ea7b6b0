package section

import (
	"fmt"

	"github.com/arloliu/gridzip/endian"
	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
)

// HeaderSize is the fixed size of the stream header in bytes.
const HeaderSize = 16

// SanityExtents is the number of per-axis extents the fixed header can carry.
// The caller-supplied extent is authoritative on decode; the stored extents
// are a sanity field, so a 3-dimensional stream records only its first two
// axis lengths.
const SanityExtents = 2

// Magic identifies a gridzip stream.
var Magic = [4]byte{'g', 'z', 'h', 'c'}

// StreamHeader is the fixed header at the start of a gridzip stream.
//
// Layout:
//
//	offset 0-3   magic "gzhc"
//	offset 4     dimensionality (1-3)
//	offset 5     value width in bits (32 or 64)
//	offset 6     block transform axis order
//	offset 7     profile
//	offset 8-15  up to two 4-byte little-endian axis lengths, zero padded
type StreamHeader struct {
	Dims      uint8
	Width     format.Width
	AxisOrder format.AxisOrder
	Profile   format.Profile
	Extent    [SanityExtents]uint32
}

// NewStreamHeader builds the header for a stream of the given width, profile
// and extent. The extent's leading axes fill the sanity fields.
func NewStreamHeader(width format.Width, profile format.Profile, extent []int) StreamHeader {
	h := StreamHeader{
		Dims:      uint8(len(extent)),
		Width:     width,
		AxisOrder: format.AxisOrderDefault,
		Profile:   profile,
	}
	for i := 0; i < len(extent) && i < SanityExtents; i++ {
		h.Extent[i] = uint32(extent[i])
	}

	return h
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h *StreamHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], Magic[:])
	b[4] = h.Dims
	b[5] = uint8(h.Width)
	b[6] = uint8(h.AxisOrder)
	b[7] = uint8(h.Profile)
	engine.PutUint32(b[8:12], h.Extent[0])
	engine.PutUint32(b[12:16], h.Extent[1])

	return b
}

// Parse reads the header from data.
//
// Returns ErrShortInput if data holds fewer than HeaderSize bytes and
// ErrBadMagic if the magic does not match; field validation is left to
// Validate so the caller can report which expectation failed.
func (h *StreamHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: stream header needs %d bytes, have %d", errs.ErrShortInput, HeaderSize, len(data))
	}
	if [4]byte(data[0:4]) != Magic {
		return errs.ErrBadMagic
	}

	engine := endian.GetLittleEndianEngine()
	h.Dims = data[4]
	h.Width = format.Width(data[5])
	h.AxisOrder = format.AxisOrder(data[6])
	h.Profile = format.Profile(data[7])
	h.Extent[0] = engine.Uint32(data[8:12])
	h.Extent[1] = engine.Uint32(data[12:16])

	return nil
}

// Validate checks the parsed header against the decoder's expectations.
func (h *StreamHeader) Validate(width format.Width, extent []int) error {
	if int(h.Dims) != len(extent) {
		return fmt.Errorf("%w: stream has %d dimensions, expected %d", errs.ErrBadHeader, h.Dims, len(extent))
	}
	if h.Width != width {
		return fmt.Errorf("%w: stream width %s, expected %s", errs.ErrBadHeader, h.Width, width)
	}
	if h.AxisOrder != format.AxisOrderDefault {
		return fmt.Errorf("%w: unsupported axis order %d", errs.ErrBadHeader, h.AxisOrder)
	}
	if !h.Profile.Valid() {
		return fmt.Errorf("%w: unknown profile %d", errs.ErrBadHeader, h.Profile)
	}
	for i := 0; i < len(extent) && i < SanityExtents; i++ {
		if h.Extent[i] != uint32(extent[i]) {
			return fmt.Errorf("%w: stream axis %d has length %d, expected %d",
				errs.ErrBadHeader, i, h.Extent[i], extent[i])
		}
	}

	return nil
}
