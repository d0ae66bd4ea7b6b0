package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; the compressor keeps an
// internal hash table that benefits from reuse across chunks.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps chunk payloads in LZ4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the chunk payload as one LZ4 block sized by
// lz4.CompressBlockBound. With a destination of that size the block always
// encodes, so an incompressible payload comes back no smaller than the input;
// the chunk container stores such chunks raw under the no-op codec id
// instead of expanding them.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress reverses Compress. The LZ4 block format records no decompressed
// size, but container payloads are gridzip streams, which stay near the raw
// chunk size: the first attempt allocates four times the block and each
// retry doubles, giving up at the container's payload ceiling rather than
// chasing a corrupt block's expansion.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := 4 * len(data); ; size *= 2 {
		if size > maxDecodedSize {
			return nil, lz4.ErrInvalidSourceShortBuffer
		}

		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}
}
