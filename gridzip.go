// Package gridzip provides a lossless compressor for dense 1-, 2- and
// 3-dimensional arrays of IEEE-754 single- or double-precision values.
//
// The codec tiles the array into fixed-size hypercubes, decorrelates each
// with a reversible integer block transform, transposes the result into bit
// planes and eliminates all-zero planes. The round trip is bit-exact:
// signed zeros, infinities and NaN payloads are reproduced unchanged.
//
// # Basic Usage
//
// Compressing a 2-dimensional float32 array:
//
//	extent := gridzip.Extent{127, 127}
//	dst := make([]byte, gridzip.CompressedSizeBound32(extent))
//	n, err := gridzip.Compress32(values, extent, dst)
//	if err != nil {
//	    return err
//	}
//	stream := dst[:n]
//
// Decompressing it again:
//
//	out := make([]float32, extent.Linear())
//	_, err := gridzip.Decompress32(stream, out, extent)
//
// The extent travels out-of-band: the decoder is told the array shape and
// validates the stream header against it. Values are laid out first-major
// (the first axis varies slowest).
//
// # Package Structure
//
// This package wraps the grid package, which schedules hypercubes and frames
// streams; the encoding package holds the bit-level kernels. The chunker
// package and cmd/gridzip drive the codec over fixed-extent chunk streams.
package gridzip

import (
	"github.com/arloliu/gridzip/encoding"
	"github.com/arloliu/gridzip/format"
	"github.com/arloliu/gridzip/grid"
)

// Extent describes the shape of an array, one length per axis, first-major.
type Extent = grid.Extent

// Option configures the encoder.
type Option = grid.Option

// WithProfile selects the encoding profile recorded in the stream header.
func WithProfile(profile format.Profile) Option {
	return grid.WithProfile(profile)
}

// Compress32 compresses a float32 array into dst and returns the compressed
// byte length. dst must hold at least CompressedSizeBound32(extent) bytes.
func Compress32(values []float32, extent Extent, dst []byte, opts ...Option) (int, error) {
	encoder, err := grid.NewEncoder[uint32](extent, opts...)
	if err != nil {
		return 0, err
	}

	return encoder.Encode(encoding.Float32Words(values), dst)
}

// Compress64 compresses a float64 array into dst and returns the compressed
// byte length. dst must hold at least CompressedSizeBound64(extent) bytes.
func Compress64(values []float64, extent Extent, dst []byte, opts ...Option) (int, error) {
	encoder, err := grid.NewEncoder[uint64](extent, opts...)
	if err != nil {
		return 0, err
	}

	return encoder.Encode(encoding.Float64Words(values), dst)
}

// Decompress32 reconstructs a float32 array from stream and returns the
// number of stream bytes consumed.
func Decompress32(stream []byte, values []float32, extent Extent) (int, error) {
	decoder, err := grid.NewDecoder[uint32](extent)
	if err != nil {
		return 0, err
	}

	return decoder.Decode(stream, encoding.Float32Words(values))
}

// Decompress64 reconstructs a float64 array from stream and returns the
// number of stream bytes consumed.
func Decompress64(stream []byte, values []float64, extent Extent) (int, error) {
	decoder, err := grid.NewDecoder[uint64](extent)
	if err != nil {
		return 0, err
	}

	return decoder.Decode(stream, encoding.Float64Words(values))
}

// CompressedSizeBound32 returns the worst-case compressed size of a float32
// array of the given extent, including framing.
func CompressedSizeBound32(extent Extent) int {
	return grid.CompressedSizeBound[uint32](extent)
}

// CompressedSizeBound64 returns the worst-case compressed size of a float64
// array of the given extent, including framing.
func CompressedSizeBound64(extent Extent) int {
	return grid.CompressedSizeBound[uint64](extent)
}
