package grid

import (
	"fmt"

	"github.com/arloliu/gridzip/encoding"
	"github.com/arloliu/gridzip/endian"
	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
	"github.com/arloliu/gridzip/internal/options"
	"github.com/arloliu/gridzip/section"
)

// Encoder compresses arrays of one fixed extent into gridzip streams.
// An Encoder is pure over its inputs and safe for sequential reuse.
type Encoder[W encoding.Word] struct {
	extent  Extent
	profile format.Profile
	engine  endian.EndianEngine
	dims    int
	side    int
}

// NewEncoder creates an encoder for arrays of the given extent.
func NewEncoder[W encoding.Word](extent Extent, opts ...Option) (*Encoder[W], error) {
	if err := extent.Validate(); err != nil {
		return nil, err
	}

	cfg := config{profile: format.ProfileStrong}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder[W]{
		extent:  extent,
		profile: cfg.profile,
		engine:  endian.GetLittleEndianEngine(),
		dims:    extent.Dims(),
		side:    SideLength(extent.Dims()),
	}, nil
}

// MaxBlockWords returns the worst-case word count of one compressed block:
// all group headers plus every data word present.
func MaxBlockWords[W encoding.Word]() int {
	wbits := encoding.BitsOf[W]()
	return HypercubeSize / wbits * (wbits + 1)
}

// CompressedSizeBound returns a conservative upper bound on the byte length
// of a compressed stream for the extent: header, offset table, worst-case
// blocks and the raw border. Returns 0 for an invalid extent.
func CompressedSizeBound[W encoding.Word](extent Extent) int {
	if extent.Validate() != nil {
		return 0
	}

	wordBytes := encoding.BitsOf[W]() / 8
	h := extent.NumHypercubes()

	return section.HeaderSize + h*wordBytes + h*MaxBlockWords[W]()*wordBytes + extent.BorderLen()*wordBytes
}

// Encode compresses values into dst and returns the compressed byte length.
// values holds the array in first-major order as raw bit patterns; dst must
// be pre-sized to at least CompressedSizeBound for the encoder's extent.
func (e *Encoder[W]) Encode(values []W, dst []byte) (int, error) {
	if len(values) != e.extent.Linear() {
		return 0, fmt.Errorf("%w: extent holds %d values, input has %d",
			errs.ErrBadExtent, e.extent.Linear(), len(values))
	}

	bound := CompressedSizeBound[W](e.extent)
	if len(dst) < bound {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrBufferTooSmall, bound, len(dst))
	}

	wbits := encoding.BitsOf[W]()
	wordBytes := wbits / 8
	numHC := e.extent.NumHypercubes()
	table := section.NewOffsetTable(widthOf[W](), numHC)
	blockStart := section.HeaderSize + table.Size()

	cube, putCube := getWordSlice[W](HypercubeSize)
	defer putCube()
	block, putBlock := getWordSlice[W](MaxBlockWords[W]())
	defer putBlock()
	scratch, putScratch := getWordSlice[W](wbits)
	defer putScratch()

	cur := blockStart
	for h := 0; h < numHC; h++ {
		e.gather(values, h, cube)
		encoding.ForwardBlockTransform(cube, e.dims, e.side)

		out := block[:0]
		for off := 0; off < HypercubeSize; off += wbits {
			group := cube[off : off+wbits]
			encoding.TransposeBits(group, scratch)
			out = encoding.EncodeZeroColumns(group, out)
		}

		table.Set(h, uint64(cur-blockStart))
		for _, w := range out {
			putWord(e.engine, dst[cur:], w)
			cur += wordBytes
		}
	}

	e.extent.forEachBorder(func(idx int) {
		putWord(e.engine, dst[cur:], values[idx])
		cur += wordBytes
	})

	header := section.NewStreamHeader(widthOf[W](), e.profile, e.extent)
	copy(dst[:section.HeaderSize], header.Bytes())
	table.WriteTo(dst[section.HeaderSize:blockStart])

	return cur, nil
}

// gather copies the hypercube at hcIndex out of the array into cube,
// preserving the first-major order of the cube's own axes.
func (e *Encoder[W]) gather(src []W, hcIndex int, cube []W) {
	s := e.side
	switch e.dims {
	case 1:
		base := hcIndex * s
		copy(cube, src[base:base+s])
	case 2:
		n1 := e.extent[1]
		g1 := n1 / s
		o0 := hcIndex / g1 * s
		o1 := hcIndex % g1 * s
		base := o0*n1 + o1
		for y := 0; y < s; y++ {
			copy(cube[y*s:(y+1)*s], src[base+y*n1:])
		}
	case 3:
		n1, n2 := e.extent[1], e.extent[2]
		g1, g2 := n1/s, n2/s
		o0 := hcIndex / (g1 * g2) * s
		rem := hcIndex % (g1 * g2)
		o1 := rem / g2 * s
		o2 := rem % g2 * s
		base := (o0*n1+o1)*n2 + o2
		for z := 0; z < s; z++ {
			for y := 0; y < s; y++ {
				row := base + (z*n1+y)*n2
				copy(cube[(z*s+y)*s:(z*s+y+1)*s], src[row:row+s])
			}
		}
	}
}
