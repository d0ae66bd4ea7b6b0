// Package encoding implements the bit-level kernels of the gridzip hypercube
// codec: the value codec between floating-point values and their unsigned
// integer bit patterns, the reversible block transform, the bit-plane
// transpose, and zero-column elimination.
//
// All kernels operate on machine words (uint32 for float32 data, uint64 for
// float64 data) through the Word type constraint and are bit-exact: every
// operation has an exact inverse, so NaN payloads, signed zeros and
// infinities survive a round trip unchanged.
//
// The kernels are format-defining. Their output is fixed by the stream
// contract, so they are written against the serial reference semantics;
// callers that parallelize must reproduce the same bytes.
package encoding
