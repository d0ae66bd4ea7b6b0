package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
)

func TestStreamHeader_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		width  format.Width
		extent []int
	}{
		{"1d 32-bit", format.Width32, []int{4096}},
		{"2d 64-bit", format.Width64, []int{127, 127}},
		{"3d 32-bit", format.Width32, []int{63, 63, 63}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewStreamHeader(tt.width, format.ProfileStrong, tt.extent)
			b := h.Bytes()
			require.Len(t, b, HeaderSize)

			var parsed StreamHeader
			require.NoError(t, parsed.Parse(b))
			require.Equal(t, h, parsed)
			require.NoError(t, parsed.Validate(tt.width, tt.extent))
		})
	}
}

func TestStreamHeader_Layout(t *testing.T) {
	h := NewStreamHeader(format.Width32, format.ProfileFast, []int{127, 300})
	b := h.Bytes()

	require.Equal(t, Magic[:], b[0:4])
	require.Equal(t, byte(2), b[4])
	require.Equal(t, byte(32), b[5])
	require.Equal(t, byte(format.AxisOrderDefault), b[6])
	require.Equal(t, byte(format.ProfileFast), b[7])
	require.Equal(t, []byte{127, 0, 0, 0}, b[8:12])
	require.Equal(t, []byte{0x2c, 0x01, 0, 0}, b[12:16])
}

func TestStreamHeader_ThreeDimensionsTruncatesSanityExtent(t *testing.T) {
	// Only the first two axis lengths fit the fixed header; the third is
	// supplied out-of-band and not validated.
	h := NewStreamHeader(format.Width64, format.ProfileStrong, []int{63, 64, 65})
	b := h.Bytes()

	var parsed StreamHeader
	require.NoError(t, parsed.Parse(b))
	require.Equal(t, uint32(63), parsed.Extent[0])
	require.Equal(t, uint32(64), parsed.Extent[1])
	require.NoError(t, parsed.Validate(format.Width64, []int{63, 64, 65}))
	require.NoError(t, parsed.Validate(format.Width64, []int{63, 64, 999}))
	require.Error(t, parsed.Validate(format.Width64, []int{63, 65, 65}))
}

func TestStreamHeader_ParseErrors(t *testing.T) {
	var h StreamHeader

	err := h.Parse(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrShortInput)

	bad := make([]byte, HeaderSize)
	copy(bad, "nope")
	require.ErrorIs(t, h.Parse(bad), errs.ErrBadMagic)
}

func TestStreamHeader_ValidateErrors(t *testing.T) {
	h := NewStreamHeader(format.Width32, format.ProfileStrong, []int{64, 64})

	require.ErrorIs(t, h.Validate(format.Width32, []int{64}), errs.ErrBadHeader)
	require.ErrorIs(t, h.Validate(format.Width64, []int{64, 64}), errs.ErrBadHeader)
	require.ErrorIs(t, h.Validate(format.Width32, []int{64, 65}), errs.ErrBadHeader)

	h.AxisOrder = 0x7f
	require.ErrorIs(t, h.Validate(format.Width32, []int{64, 64}), errs.ErrBadHeader)
}
