package pool

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorWriter struct {
	err error
}

func (w *errorWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, bb.WriteByte(' '))

	n, err = bb.Write([]byte("world"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	assert.Equal(t, []byte("hello world"), bb.Bytes())
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	_, _ = bb.Write([]byte("some data"))
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	_, _ = bb.Write([]byte("record"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, "record", buf.String())

	_, err = bb.WriteTo(&errorWriter{err: io.ErrShortWrite})
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(ChunkBufferDefaultSize)
		bb.Grow(100)
		assert.Equal(t, ChunkBufferDefaultSize, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(ChunkBufferDefaultSize)
		bb.B = append(bb.B, make([]byte, ChunkBufferDefaultSize)...)
		bb.Grow(1)
		assert.GreaterOrEqual(t, cap(bb.B), 2*ChunkBufferDefaultSize)
		assert.Equal(t, ChunkBufferDefaultSize, bb.Len())
	})

	t.Run("large request", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.Grow(ChunkBufferDefaultSize * 10)
		assert.GreaterOrEqual(t, cap(bb.B), ChunkBufferDefaultSize*10)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("keep"))
		bb.Grow(ChunkBufferDefaultSize * 2)
		assert.Equal(t, []byte("keep"), bb.Bytes())
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("dirty"))
	p.Put(bb)

	again := p.Get()
	require.NotNil(t, again)
	assert.Equal(t, 0, again.Len(), "pooled buffers must come back empty")

	// oversized and nil buffers are dropped without panicking
	p.Put(NewByteBuffer(1024))
	p.Put(nil)
}

func TestChunkBufferPool(t *testing.T) {
	bb := GetChunkBuffer()
	require.NotNil(t, bb)
	_, _ = bb.Write(make([]byte, 100))
	PutChunkBuffer(bb)

	bb = GetChunkBuffer()
	assert.Equal(t, 0, bb.Len())
	PutChunkBuffer(bb)
}
