package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gridzip/errs"
)

func TestSideLength(t *testing.T) {
	require.Equal(t, 4096, SideLength(1))
	require.Equal(t, 64, SideLength(2))
	require.Equal(t, 16, SideLength(3))
	require.Equal(t, 0, SideLength(4))

	// Every supported configuration keeps the hypercube at 4096 values.
	for dims := 1; dims <= 3; dims++ {
		size := 1
		for d := 0; d < dims; d++ {
			size *= SideLength(dims)
		}
		require.Equal(t, HypercubeSize, size)
	}
}

func TestExtent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		extent  Extent
		wantErr bool
	}{
		{"1d", Extent{4096}, false},
		{"2d", Extent{127, 127}, false},
		{"3d", Extent{63, 63, 63}, false},
		{"empty", Extent{}, true},
		{"4d", Extent{2, 2, 2, 2}, true},
		{"zero axis", Extent{64, 0}, true},
		{"negative axis", Extent{-1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.extent.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrBadExtent)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestExtent_Counts(t *testing.T) {
	tests := []struct {
		extent Extent
		linear int
		numHC  int
		border int
	}{
		{Extent{4096}, 4096, 1, 0},
		{Extent{4097}, 4097, 1, 1},
		{Extent{4095}, 4095, 0, 4095},
		{Extent{127, 127}, 16129, 1, 16129 - 4096},
		{Extent{128, 128}, 16384, 4, 0},
		{Extent{65, 16, 16}, 16640, 4, 256},
		{Extent{63, 63, 63}, 250047, 27, 250047 - 27*4096},
	}
	for _, tt := range tests {
		require.Equal(t, tt.linear, tt.extent.Linear(), "extent %v", tt.extent)
		require.Equal(t, tt.numHC, tt.extent.NumHypercubes(), "extent %v", tt.extent)
		require.Equal(t, tt.border, tt.extent.BorderLen(), "extent %v", tt.extent)
	}
}

func TestExtent_BorderWalk_CoversComplementOnce(t *testing.T) {
	extents := []Extent{
		{4097},
		{100},
		{127, 127},
		{64, 70},
		{65, 16, 16},
		{17, 18, 19},
	}
	for _, ext := range extents {
		seen := make(map[int]int)
		ext.forEachBorder(func(idx int) {
			seen[idx]++
		})

		require.Len(t, seen, ext.BorderLen(), "extent %v", ext)
		for idx, count := range seen {
			require.Equal(t, 1, count, "extent %v index %d", ext, idx)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, ext.Linear())
		}
	}
}

func TestExtent_BorderWalk_1DOrder(t *testing.T) {
	ext := Extent{4100}
	var got []int
	ext.forEachBorder(func(idx int) {
		got = append(got, idx)
	})

	require.Equal(t, []int{4096, 4097, 4098, 4099}, got)
}

func TestExtent_BorderWalk_3DSlab(t *testing.T) {
	// One whole hypercube column plus a single remainder plane on the
	// slowest axis: the border holds the 16x16 values at first coordinate 64.
	ext := Extent{65, 16, 16}
	var got []int
	ext.forEachBorder(func(idx int) {
		got = append(got, idx)
	})

	require.Len(t, got, 256)
	require.Equal(t, 64*16*16, got[0])
	require.Equal(t, 65*16*16-1, got[len(got)-1])
}
