package pool

import "sync"

// Word slice pools back the per-call hypercube and block scratch of the
// codec. A hypercube is 4096 words and a worst-case block 4096/W*(W+1)
// words, so the slices are small and churn once per hypercube.
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
)

// GetUint32Slice retrieves a uint32 slice of the given length from the pool.
// The slice contents are unspecified. The caller must call the returned
// cleanup function (typically with defer) to return the slice to the pool.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}

// GetUint64Slice retrieves a uint64 slice of the given length from the pool.
// The slice contents are unspecified. The caller must call the returned
// cleanup function (typically with defer) to return the slice to the pool.
func GetUint64Slice(size int) ([]uint64, func()) {
	ptr, _ := uint64SlicePool.Get().(*[]uint64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint64SlicePool.Put(ptr) }
}
