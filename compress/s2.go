package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor wraps chunk payloads in S2, the throughput-oriented Snappy
// successor. It is the default container for the fast profile.
//
// Unlike the general streaming use of s2, chunk payloads arrive whole with a
// known size, so both directions size their destination exactly once: the
// encoder from s2.MaxEncodedLen, the decoder from the length recorded in the
// s2 block itself.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the chunk payload as one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(make([]byte, s2.MaxEncodedLen(len(data))), data), nil
}

// Decompress reverses Compress. The decoded length is validated against the
// container's payload ceiling before the destination is allocated, so a
// corrupt length field cannot trigger an oversized allocation.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n < 0 || n > maxDecodedSize {
		return nil, fmt.Errorf("s2 decoded length %d exceeds payload ceiling", n)
	}

	return s2.Decode(make([]byte, n), data)
}
