package compress

// NoOpCompressor passes chunk payloads through unchanged. It backs
// format.CompressionNone, and the container writer also falls back to it for
// chunks a real codec could not shrink. Both directions return the input
// slice itself; the driver treats payloads as read-only, so no copy is made.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
