package encoding

import (
	"math"
	"unsafe"
)

// Word constrains the unsigned integer carrier types of the codec.
// uint32 carries float32 data, uint64 carries float64 data.
type Word interface {
	~uint32 | ~uint64
}

// Float constrains the floating-point value types the codec accepts.
type Float interface {
	~float32 | ~float64
}

// BitsOf returns the width of W in bits (32 or 64).
func BitsOf[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}

// Float32Bits reinterprets the storage bits of v as a uint32.
// The value is not modified; NaN payloads and both zeros are preserved.
func Float32Bits(v float32) uint32 {
	return math.Float32bits(v)
}

// Float32FromBits is the inverse reinterpretation of Float32Bits.
func Float32FromBits(u uint32) float32 {
	return math.Float32frombits(u)
}

// Float64Bits reinterprets the storage bits of v as a uint64.
// The value is not modified; NaN payloads and both zeros are preserved.
func Float64Bits(v float64) uint64 {
	return math.Float64bits(v)
}

// Float64FromBits is the inverse reinterpretation of Float64Bits.
func Float64FromBits(u uint64) float64 {
	return math.Float64frombits(u)
}

// Float32Words returns a []uint32 view sharing v's memory. Mutating the view
// mutates v; the caller owns both for the duration of the codec call.
func Float32Words(v []float32) []uint32 {
	if len(v) == 0 {
		return nil
	}

	return unsafe.Slice((*uint32)(unsafe.Pointer(&v[0])), len(v))
}

// Float64Words returns a []uint64 view sharing v's memory.
func Float64Words(v []float64) []uint64 {
	if len(v) == 0 {
		return nil
	}

	return unsafe.Slice((*uint64)(unsafe.Pointer(&v[0])), len(v))
}
