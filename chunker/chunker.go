// Package chunker drives the gridzip codec over streams of fixed-extent
// chunks. The input to Compress is a raw dump of arrays, each exactly one
// extent in size; every chunk compresses to one gridzip stream and the
// streams are concatenated. Decompress consumes streams back-to-back,
// preserving unconsumed bytes between reads.
//
// An optional container wraps each compressed chunk in a record carrying the
// codec id, payload length and an xxHash64 checksum. Without a container the
// driver output is byte-identical to the library's stream format.
package chunker

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/arloliu/gridzip"
	"github.com/arloliu/gridzip/compress"
	"github.com/arloliu/gridzip/endian"
	"github.com/arloliu/gridzip/errs"
	"github.com/arloliu/gridzip/format"
	"github.com/arloliu/gridzip/grid"
	"github.com/arloliu/gridzip/internal/hash"
	"github.com/arloliu/gridzip/internal/pool"
)

// recordHeaderSize is the container record header: codec id (1), payload
// length (4, little-endian) and xxHash64 checksum (8, little-endian).
const recordHeaderSize = 13

// maxRecordPayload bounds container payload lengths against corrupt records.
const maxRecordPayload = 1 << 30

// Config selects the chunk shape and driver behavior.
type Config struct {
	// Extent is the per-chunk array shape, first-major. Required.
	Extent grid.Extent

	// Width selects 32- or 64-bit values. Defaults to format.Width32.
	Width format.Width

	// Profile is recorded in each stream header. Defaults to ProfileStrong.
	Profile format.Profile

	// Wrap selects the container codec. Defaults to CompressionNone, which
	// writes raw gridzip streams with no container records.
	Wrap format.CompressionType
}

func (c *Config) normalize() error {
	if c.Width == 0 {
		c.Width = format.Width32
	}
	if c.Profile == 0 {
		c.Profile = format.ProfileStrong
	}
	if c.Wrap == 0 {
		c.Wrap = format.CompressionNone
	}

	if err := c.Extent.Validate(); err != nil {
		return err
	}
	if !c.Width.Valid() {
		return fmt.Errorf("%w: value width %d", errs.ErrBadConfig, c.Width)
	}
	if !c.Profile.Valid() {
		return fmt.Errorf("%w: profile %d", errs.ErrBadConfig, c.Profile)
	}
	if _, err := compress.GetCodec(c.Wrap); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrBadConfig, err)
	}

	return nil
}

func (c *Config) sizeBound() int {
	if c.Width == format.Width32 {
		return gridzip.CompressedSizeBound32(c.Extent)
	}

	return gridzip.CompressedSizeBound64(c.Extent)
}

// Stats summarizes one driver run.
type Stats struct {
	Chunks          int
	RawBytes        int64
	CompressedBytes int64
}

// Ratio returns raw size over compressed size, or 0 before any output.
func (s Stats) Ratio() float64 {
	if s.CompressedBytes == 0 {
		return 0
	}

	return float64(s.RawBytes) / float64(s.CompressedBytes)
}

// Compress reads fixed-extent chunks from r until EOF, compresses each and
// writes the results to w. A trailing partial chunk is ErrChunkSize; an
// input with no complete chunk at all is rejected the same way.
func Compress(r io.Reader, w io.Writer, cfg Config) (Stats, error) {
	var stats Stats
	if err := cfg.normalize(); err != nil {
		return stats, err
	}

	raw, rawBytes := newChunk(cfg.Width, cfg.Extent.Linear())
	out := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(out)
	out.EnsureLength(cfg.sizeBound())

	codec, _ := compress.CodecFor(cfg.Wrap, cfg.Profile)

	for {
		if _, err := io.ReadFull(r, rawBytes); err != nil {
			if err == io.EOF {
				if stats.Chunks == 0 {
					return stats, fmt.Errorf("%w: input is empty", errs.ErrChunkSize)
				}

				return stats, nil
			}
			if err == io.ErrUnexpectedEOF {
				return stats, fmt.Errorf("%w: input size is not a multiple of %d bytes",
					errs.ErrChunkSize, len(rawBytes))
			}

			return stats, err
		}

		n, err := raw.compress(cfg, out.Bytes())
		if err != nil {
			return stats, err
		}

		written, err := writeChunk(w, cfg.Wrap, codec, out.Bytes()[:n])
		if err != nil {
			return stats, err
		}

		stats.Chunks++
		stats.RawBytes += int64(len(rawBytes))
		stats.CompressedBytes += int64(written)
	}
}

// Decompress reads compressed chunks from r until EOF, reconstructs each and
// writes the raw values to w. Input must end exactly on a chunk boundary;
// trailing bytes that do not decode to a full chunk (including zero padding)
// are an error.
func Decompress(r io.Reader, w io.Writer, cfg Config) (Stats, error) {
	var stats Stats
	if err := cfg.normalize(); err != nil {
		return stats, err
	}

	if cfg.Wrap == format.CompressionNone {
		return decompressRaw(r, w, cfg, &stats)
	}

	return decompressContainer(r, w, cfg, &stats)
}

// decompressRaw consumes concatenated gridzip streams. The buffer holds one
// size bound, enough for at least one whole stream; whatever one decode call
// does not consume is shifted down and topped up before the next call.
func decompressRaw(r io.Reader, w io.Writer, cfg Config, stats *Stats) (Stats, error) {
	raw, rawBytes := newChunk(cfg.Width, cfg.Extent.Linear())
	buf := make([]byte, cfg.sizeBound())
	have := 0
	eof := false

	for {
		for have < len(buf) && !eof {
			n, err := r.Read(buf[have:])
			have += n
			if err == io.EOF {
				eof = true
				break
			}
			if err != nil {
				return *stats, err
			}
		}

		if have == 0 {
			return *stats, nil
		}

		consumed, err := raw.decompress(cfg, buf[:have])
		if err != nil {
			return *stats, err
		}

		if _, err := w.Write(rawBytes); err != nil {
			return *stats, err
		}

		stats.Chunks++
		stats.RawBytes += int64(len(rawBytes))
		stats.CompressedBytes += int64(consumed)

		copy(buf, buf[consumed:have])
		have -= consumed
	}
}

// decompressContainer consumes checksummed container records.
func decompressContainer(r io.Reader, w io.Writer, cfg Config, stats *Stats) (Stats, error) {
	raw, rawBytes := newChunk(cfg.Width, cfg.Extent.Linear())
	engine := endian.GetLittleEndianEngine()
	header := make([]byte, recordHeaderSize)

	for {
		if _, err := io.ReadFull(r, header); err != nil {
			if err == io.EOF {
				return *stats, nil
			}
			if err == io.ErrUnexpectedEOF {
				return *stats, fmt.Errorf("%w: truncated container record", errs.ErrShortInput)
			}

			return *stats, err
		}

		codecType := format.CompressionType(header[0])
		codec, err := compress.GetCodec(codecType)
		if err != nil {
			return *stats, fmt.Errorf("%w: %v", errs.ErrBadHeader, err)
		}

		length := int(engine.Uint32(header[1:5]))
		sum := engine.Uint64(header[5:13])
		if length <= 0 || length > maxRecordPayload {
			return *stats, fmt.Errorf("%w: container payload length %d", errs.ErrBadHeader, length)
		}

		payload := make([]byte, length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return *stats, fmt.Errorf("%w: truncated container payload", errs.ErrShortInput)
		}
		if hash.Checksum(payload) != sum {
			return *stats, fmt.Errorf("%w: chunk %d", errs.ErrChecksumMismatch, stats.Chunks)
		}

		stream, err := codec.Decompress(payload)
		if err != nil {
			return *stats, err
		}

		consumed, err := raw.decompress(cfg, stream)
		if err != nil {
			return *stats, err
		}
		if consumed != len(stream) {
			return *stats, fmt.Errorf("%w: %d trailing bytes in container payload",
				errs.ErrBadHeader, len(stream)-consumed)
		}

		if _, err := w.Write(rawBytes); err != nil {
			return *stats, err
		}

		stats.Chunks++
		stats.RawBytes += int64(len(rawBytes))
		stats.CompressedBytes += int64(recordHeaderSize + length)
	}
}

// writeChunk emits one compressed chunk, wrapping it in a container record
// when a container codec is selected. A chunk that the codec cannot shrink
// (an empty result, or one no smaller than the stream) is stored raw under
// the no-op codec id.
func writeChunk(w io.Writer, wrap format.CompressionType, codec compress.Codec, stream []byte) (int, error) {
	if wrap == format.CompressionNone {
		n, err := w.Write(stream)
		return n, err
	}

	payload, err := codec.Compress(stream)
	if err != nil {
		return 0, err
	}

	codecType := wrap
	if len(stream) > 0 && (len(payload) == 0 || len(payload) >= len(stream)) {
		codecType = format.CompressionNone
		payload = stream
	}

	engine := endian.GetLittleEndianEngine()
	header := make([]byte, 0, recordHeaderSize)
	header = append(header, byte(codecType))
	header = engine.AppendUint32(header, uint32(len(payload)))
	header = engine.AppendUint64(header, hash.Checksum(payload))

	if _, err := w.Write(header); err != nil {
		return 0, err
	}
	if _, err := w.Write(payload); err != nil {
		return 0, err
	}

	return recordHeaderSize + len(payload), nil
}

// chunk owns one raw chunk's value storage. The byte view aliases the typed
// slice so chunk I/O needs no copies and stays aligned for either width.
type chunk struct {
	f32 []float32
	f64 []float64
}

func newChunk(width format.Width, linear int) (*chunk, []byte) {
	c := &chunk{}
	if width == format.Width32 {
		c.f32 = make([]float32, linear)
		return c, unsafe.Slice((*byte)(unsafe.Pointer(&c.f32[0])), linear*4)
	}

	c.f64 = make([]float64, linear)

	return c, unsafe.Slice((*byte)(unsafe.Pointer(&c.f64[0])), linear*8)
}

func (c *chunk) compress(cfg Config, dst []byte) (int, error) {
	if cfg.Width == format.Width32 {
		return gridzip.Compress32(c.f32, cfg.Extent, dst, gridzip.WithProfile(cfg.Profile))
	}

	return gridzip.Compress64(c.f64, cfg.Extent, dst, gridzip.WithProfile(cfg.Profile))
}

func (c *chunk) decompress(cfg Config, stream []byte) (int, error) {
	if cfg.Width == format.Width32 {
		return gridzip.Decompress32(stream, c.f32, cfg.Extent)
	}

	return gridzip.Decompress64(stream, c.f64, cfg.Extent)
}
