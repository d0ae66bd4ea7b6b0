package compress

import (
	"fmt"

	"github.com/arloliu/gridzip/format"
)

// maxDecodedSize caps what any codec will allocate for one decoded payload.
// It matches the chunk container's payload ceiling, so a corrupt length can
// never ask for more memory than a legitimate chunk could.
const maxDecodedSize = 1 << 30

// Compressor compresses one chunk payload.
//
// Memory management: the returned slice is newly allocated and owned by the
// caller (except for the no-op codec, which passes the input through); the
// input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same type. Implementations
// validate the payload format and fail on corrupted input.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless values
// safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for a container compression type.
// Decoders use this: every codec reads its own output regardless of the
// encode-side tuning.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported container compression: %s", compressionType)
}

// CodecFor returns the encode-side Codec for a container compression type,
// tuned for the profile: the strong profile raises the zstd level, the
// remaining codecs have no ratio knob worth turning.
func CodecFor(compressionType format.CompressionType, profile format.Profile) (Codec, error) {
	if compressionType == format.CompressionZstd && profile == format.ProfileStrong {
		return NewZstdCompressorLevel(zstdStrongLevel), nil
	}

	return GetCodec(compressionType)
}
