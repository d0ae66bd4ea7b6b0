package grid

import (
	"fmt"

	"github.com/arloliu/gridzip/errs"
)

// HypercubeSize is the number of values in one hypercube. The per-dimension
// side length is chosen so that side^dims is always 4096, which keeps the
// hypercube a whole number of column groups for both value widths.
const HypercubeSize = 4096

// SideLength returns the hypercube side length S for a dimensionality:
// 4096 for D=1, 64 for D=2, 16 for D=3.
func SideLength(dims int) int {
	switch dims {
	case 1:
		return 4096
	case 2:
		return 64
	case 3:
		return 16
	default:
		return 0
	}
}

// Extent describes the shape of an input array: one positive length per
// axis in first-major order (the first axis varies slowest in memory).
type Extent []int

// Validate checks the extent for a supported dimensionality and nonzero axes.
func (e Extent) Validate() error {
	if len(e) < 1 || len(e) > 3 {
		return fmt.Errorf("%w: %d dimensions, supported range is 1-3", errs.ErrBadExtent, len(e))
	}
	for i, n := range e {
		if n <= 0 {
			return fmt.Errorf("%w: axis %d has length %d", errs.ErrBadExtent, i, n)
		}
	}

	return nil
}

// Dims returns the dimensionality of the extent.
func (e Extent) Dims() int {
	return len(e)
}

// Linear returns the total number of values in the array.
func (e Extent) Linear() int {
	n := 1
	for _, v := range e {
		n *= v
	}

	return n
}

// NumHypercubes returns the number of whole hypercubes the array contains.
func (e Extent) NumHypercubes() int {
	s := SideLength(len(e))
	h := 1
	for _, n := range e {
		h *= n / s
	}

	return h
}

// BorderLen returns the number of values outside all whole hypercubes.
func (e Extent) BorderLen() int {
	s := SideLength(len(e))
	covered := 1
	for _, n := range e {
		covered *= n / s * s
	}

	return e.Linear() - covered
}

// forEachBorder visits the linear index of every border value in canonical
// order: one slab per axis, fastest axis first. The slab of an axis holds
// the indices whose coordinate on that axis lies past the last whole
// hypercube, with faster axes ranging over their full length and slower axes
// restricted to the hypercube-covered prefix, so slabs tile the border
// exactly once.
func (e Extent) forEachBorder(visit func(idx int)) {
	s := SideLength(len(e))

	// Pad to three axes on the slow side; padded axes have extent 1 and are
	// always fully covered, so they contribute no slab.
	ext := [3]int{1, 1, 1}
	trunc := [3]int{1, 1, 1}
	off := 3 - len(e)
	for d, n := range e {
		ext[off+d] = n
		trunc[off+d] = n / s * s
	}

	for d := 2; d >= 0; d-- {
		if trunc[d] == ext[d] {
			continue
		}
		var lo, hi [3]int
		for d2 := 0; d2 < 3; d2++ {
			switch {
			case d2 == d:
				lo[d2], hi[d2] = trunc[d2], ext[d2]
			case d2 > d:
				lo[d2], hi[d2] = 0, ext[d2]
			default:
				lo[d2], hi[d2] = 0, trunc[d2]
			}
		}
		for i0 := lo[0]; i0 < hi[0]; i0++ {
			for i1 := lo[1]; i1 < hi[1]; i1++ {
				for i2 := lo[2]; i2 < hi[2]; i2++ {
					visit((i0*ext[1]+i1)*ext[2] + i2)
				}
			}
		}
	}
}
