package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Equal(t, 0, bb.Len())

	n, err := bb.Write([]byte("chunk"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("chunk"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 64)
}

func TestByteBuffer_EnsureLength(t *testing.T) {
	bb := NewByteBuffer(8)

	bb.EnsureLength(4)
	require.Equal(t, 4, bb.Len())

	copy(bb.B, "abcd")
	bb.EnsureLength(1024)
	require.Equal(t, 1024, bb.Len())
	require.Equal(t, []byte("abcd"), bb.B[:4])
}

func TestByteBuffer_SetLengthPanics(t *testing.T) {
	bb := NewByteBuffer(8)
	require.Panics(t, func() { bb.SetLength(-1) })
	require.Panics(t, func() { bb.SetLength(bb.Cap() + 1) })
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())

	// Oversized buffers are dropped instead of pooled.
	big := NewByteBuffer(4096)
	p.Put(big)
	p.Put(nil)
}

func TestChunkBufferPool(t *testing.T) {
	bb := GetChunkBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	PutChunkBuffer(bb)
}
