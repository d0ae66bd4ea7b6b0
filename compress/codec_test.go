package compress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/gridzip/format"
)

func sampleChunk(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	// Repetitive structure so every codec actually shrinks it.
	for i := range data {
		data[i] = byte(i % 64)
	}
	for i := 0; i < n/16; i++ {
		data[r.Intn(n)] = byte(r.Intn(256))
	}

	return data
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0x7f))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := sampleChunk(30, 16384)

	tests := []struct {
		name       string
		codec      Codec
		compresses bool
	}{
		{"noop", NewNoOpCompressor(), false},
		{"zstd", NewZstdCompressor(), true},
		{"s2", NewS2Compressor(), true},
		{"lz4", NewLZ4Compressor(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(data)
			require.NoError(t, err)
			if tt.compresses {
				require.Less(t, len(compressed), len(data))
			}

			decompressed, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{
		NewNoOpCompressor(), NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor(),
	} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestZstd_RejectsCorruptInput(t *testing.T) {
	codec := NewZstdCompressor()
	_, err := codec.Decompress([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}

func TestS2_RejectsCorruptInput(t *testing.T) {
	codec := NewS2Compressor()
	_, err := codec.Decompress([]byte{0xff, 0xff, 0xff, 0xff, 0xff})
	require.Error(t, err)
}

func TestCodecFor_ProfileTuning(t *testing.T) {
	data := sampleChunk(31, 16384)

	// The strong profile raises the zstd level; any zstd decoder still
	// reads the output.
	strong, err := CodecFor(format.CompressionZstd, format.ProfileStrong)
	require.NoError(t, err)
	fast, err := CodecFor(format.CompressionZstd, format.ProfileFast)
	require.NoError(t, err)
	require.NotEqual(t, strong, fast)

	decoder, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	for _, encoder := range []Codec{strong, fast} {
		compressed, err := encoder.Compress(data)
		require.NoError(t, err)

		decompressed, err := decoder.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, decompressed)
	}

	// Level-free codecs come back unchanged.
	s2Codec, err := CodecFor(format.CompressionS2, format.ProfileStrong)
	require.NoError(t, err)
	require.Equal(t, NewS2Compressor(), s2Codec)

	_, err = CodecFor(format.CompressionType(0x7f), format.ProfileStrong)
	require.Error(t, err)
}

func TestZstdCompressorLevel_Fallback(t *testing.T) {
	require.Equal(t, NewZstdCompressor(), NewZstdCompressorLevel(0))
	require.Equal(t, NewZstdCompressor(), NewZstdCompressorLevel(-2))
	require.NotEqual(t, NewZstdCompressor(), NewZstdCompressorLevel(9))
}
