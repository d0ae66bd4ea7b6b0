package grid

import (
	"github.com/arloliu/gridzip/encoding"
	"github.com/arloliu/gridzip/endian"
	"github.com/arloliu/gridzip/format"
	"github.com/arloliu/gridzip/internal/pool"
)

// widthOf maps the word type parameter to its format.Width tag.
func widthOf[W encoding.Word]() format.Width {
	if encoding.BitsOf[W]() == 32 {
		return format.Width32
	}

	return format.Width64
}

// getWordSlice borrows a pooled word slice of the given length.
func getWordSlice[W encoding.Word](size int) ([]W, func()) {
	var w W
	switch any(w).(type) {
	case uint32:
		s, done := pool.GetUint32Slice(size)
		return any(s).([]W), done
	default:
		s, done := pool.GetUint64Slice(size)
		return any(s).([]W), done
	}
}

// putWord writes one word little-endian at the start of b.
func putWord[W encoding.Word](engine endian.EndianEngine, b []byte, w W) {
	switch v := any(w).(type) {
	case uint32:
		engine.PutUint32(b, v)
	case uint64:
		engine.PutUint64(b, v)
	}
}

// readWord reads one little-endian word from the start of b.
func readWord[W encoding.Word](engine endian.EndianEngine, b []byte) W {
	var w W
	switch any(w).(type) {
	case uint32:
		return W(engine.Uint32(b))
	default:
		return W(engine.Uint64(b))
	}
}
