// Package compress provides the optional container codecs the chunk driver
// can wrap around gridzip streams: Zstandard, S2 and LZ4, plus a no-op
// pass-through. The hypercube codec itself never depends on these; they
// trade extra CPU for ratio on top of the fixed stream format, and a stream
// written without a container is byte-identical to the library output.
package compress
