package compress

// Zstandard levels used for chunk containers. The driver maps the strong
// profile to the higher level through CodecFor; the default level keeps the
// fast profile's throughput.
const (
	zstdDefaultLevel = 3
	zstdStrongLevel  = 9
)

// ZstdCompressor wraps chunk payloads in Zstandard at a fixed level.
//
// Two implementations exist behind build tags: cgo builds use the libzstd
// binding (zstd_cgo.go), other builds the pure-Go encoder (zstd_pure.go).
// Both read each other's output, and decompression ignores the level.
type ZstdCompressor struct {
	level int
}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec at the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{level: zstdDefaultLevel}
}

// NewZstdCompressorLevel creates a Zstd codec at the given zstd level.
// Levels at or below zero fall back to the default.
func NewZstdCompressorLevel(level int) ZstdCompressor {
	if level <= 0 {
		level = zstdDefaultLevel
	}

	return ZstdCompressor{level: level}
}
