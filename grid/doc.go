// Package grid implements the hypercube scheduler and stream assembly of the
// gridzip codec. The encoder tiles an n-dimensional array into fixed-size
// hypercubes, runs each through the block transform, bit-plane transpose and
// zero-column elimination, frames the variable-length blocks behind a header
// and offset table, and appends the array border verbatim. The decoder
// mirrors the same traversal.
//
// The packages under encoding define the per-block kernels; this package owns
// the array-level concerns: extent math, hypercube indexing, border slabs and
// wire serialization.
package grid
