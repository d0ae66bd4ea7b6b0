package grid

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/gridzip/encoding"
	"github.com/arloliu/gridzip/endian"
	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/section"
)

// Decoder reconstructs arrays of one fixed extent from gridzip streams.
// The caller-supplied extent is authoritative; the stream header is parsed
// and checked against it.
type Decoder[W encoding.Word] struct {
	extent Extent
	engine endian.EndianEngine
	dims   int
	side   int
}

// NewDecoder creates a decoder for arrays of the given extent.
func NewDecoder[W encoding.Word](extent Extent) (*Decoder[W], error) {
	if err := extent.Validate(); err != nil {
		return nil, err
	}

	return &Decoder[W]{
		extent: extent,
		engine: endian.GetLittleEndianEngine(),
		dims:   extent.Dims(),
		side:   SideLength(extent.Dims()),
	}, nil
}

// Decode reconstructs the array bit patterns from stream into values and
// returns the number of stream bytes consumed. Decoding the same stream
// twice yields the same result; a stream shorter than its declared content
// fails with ErrShortInput and leaves no guarantee about values.
func (d *Decoder[W]) Decode(stream []byte, values []W) (int, error) {
	if len(values) != d.extent.Linear() {
		return 0, fmt.Errorf("%w: extent holds %d values, output has %d",
			errs.ErrBadExtent, d.extent.Linear(), len(values))
	}

	var header section.StreamHeader
	if err := header.Parse(stream); err != nil {
		return 0, err
	}
	if err := header.Validate(widthOf[W](), d.extent); err != nil {
		return 0, err
	}

	numHC := d.extent.NumHypercubes()
	table, err := section.ParseOffsetTable(stream[section.HeaderSize:], widthOf[W](), numHC)
	if err != nil {
		return 0, err
	}

	wbits := encoding.BitsOf[W]()
	wordBytes := wbits / 8
	blockStart := section.HeaderSize + table.Size()

	cube, putCube := getWordSlice[W](HypercubeSize)
	defer putCube()
	group, putGroup := getWordSlice[W](wbits)
	defer putGroup()
	packed, putPacked := getWordSlice[W](wbits + 1)
	defer putPacked()

	cur := blockStart
	for h := 0; h < numHC; h++ {
		if table.At(h) != uint64(cur-blockStart) {
			return 0, fmt.Errorf("%w: block %d offset %d disagrees with stream position %d",
				errs.ErrBadHeader, h, table.At(h), cur-blockStart)
		}

		for off := 0; off < HypercubeSize; off += wbits {
			if cur+wordBytes > len(stream) {
				return 0, fmt.Errorf("%w: truncated group header in block %d", errs.ErrShortInput, h)
			}
			packed[0] = readWord[W](d.engine, stream[cur:])

			n := bits.OnesCount64(uint64(packed[0]))
			if cur+(1+n)*wordBytes > len(stream) {
				return 0, fmt.Errorf("%w: truncated group payload in block %d", errs.ErrShortInput, h)
			}
			for i := 1; i <= n; i++ {
				packed[i] = readWord[W](d.engine, stream[cur+i*wordBytes:])
			}

			consumed, zerr := encoding.DecodeZeroColumns(packed[:1+n], group)
			if zerr != nil {
				return 0, zerr
			}
			cur += consumed * wordBytes

			encoding.TransposeBits(group, packed[:wbits])
			copy(cube[off:off+wbits], group[:wbits])
		}

		encoding.InverseBlockTransform(cube, d.dims, d.side)
		d.scatter(cube, h, values)
	}

	var berr error
	d.extent.forEachBorder(func(idx int) {
		if berr != nil {
			return
		}
		if cur+wordBytes > len(stream) {
			berr = fmt.Errorf("%w: truncated border", errs.ErrShortInput)
			return
		}
		values[idx] = readWord[W](d.engine, stream[cur:])
		cur += wordBytes
	})
	if berr != nil {
		return 0, berr
	}

	return cur, nil
}

// scatter writes the hypercube at hcIndex back into its array positions.
func (d *Decoder[W]) scatter(cube []W, hcIndex int, dst []W) {
	s := d.side
	switch d.dims {
	case 1:
		base := hcIndex * s
		copy(dst[base:base+s], cube)
	case 2:
		n1 := d.extent[1]
		g1 := n1 / s
		o0 := hcIndex / g1 * s
		o1 := hcIndex % g1 * s
		base := o0*n1 + o1
		for y := 0; y < s; y++ {
			copy(dst[base+y*n1:base+y*n1+s], cube[y*s:])
		}
	case 3:
		n1, n2 := d.extent[1], d.extent[2]
		g1, g2 := n1/s, n2/s
		o0 := hcIndex / (g1 * g2) * s
		rem := hcIndex % (g1 * g2)
		o1 := rem / g2 * s
		o2 := rem % g2 * s
		base := (o0*n1+o1)*n2 + o2
		for z := 0; z < s; z++ {
			for y := 0; y < s; y++ {
				row := base + (z*n1+y)*n2
				copy(dst[row:row+s], cube[(z*s+y)*s:])
			}
		}
	}
}
