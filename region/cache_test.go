package region

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arloliu/anvil/errs"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		cx, cz   int
		expected string
	}{
		{0, 0, "r.0.0.mca"},
		{31, 31, "r.0.0.mca"},
		{32, 0, "r.1.0.mca"},
		{-1, -1, "r.-1.-1.mca"},
		{-32, -33, "r.-1.-2.mca"},
		{70, -30, "r.2.-1.mca"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, FileName(tt.cx, tt.cz))
		})
	}
}

func TestCache_WriteRead(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)

	chunks := map[[2]int][]byte{
		{0, 0}:    []byte("origin"),
		{-1, -1}:  []byte("south-west"),
		{33, 2}:   []byte("east"),
		{70, -30}: []byte("far"),
	}
	for coord, data := range chunks {
		require.NoError(t, c.Write(coord[0], coord[1], data))
	}
	require.Equal(t, 4, c.Len())
	require.NoError(t, c.Close())
	require.Zero(t, c.Len())

	for _, name := range []string{"r.0.0.mca", "r.-1.-1.mca", "r.1.0.mca", "r.2.-1.mca"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	f := openRegion(t, filepath.Join(dir, "r.-1.-1.mca"))
	data, ok := f.Read(31, 31)
	require.True(t, ok)
	require.Equal(t, []byte("south-west"), data)

	c, err = NewCache(dir)
	require.NoError(t, err)
	defer c.Close()
	for coord, want := range chunks {
		require.True(t, c.Has(coord[0], coord[1]))
		got, ok := c.Read(coord[0], coord[1])
		require.True(t, ok, "chunk %v", coord)
		require.Equal(t, want, got)
	}
}

func TestCache_EvictionClosesFiles(t *testing.T) {
	c, err := NewCache(t.TempDir(), WithCacheSize(1))
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Write(0, 0, []byte("a")))
	first, ok := c.files.Peek(regionKey{})
	require.True(t, ok)

	require.NoError(t, c.Write(32, 0, []byte("b")))
	require.Equal(t, 1, c.Len())

	_, err = first.ReadChunk(0, 0)
	require.ErrorIs(t, err, errs.ErrClosed)

	data, ok := c.Read(0, 0)
	require.True(t, ok)
	require.Equal(t, []byte("a"), data)
}

func TestCache_ReadMissingRegionDoesNotCreate(t *testing.T) {
	dir := t.TempDir()
	c, err := NewCache(dir)
	require.NoError(t, err)
	defer c.Close()

	data, ok := c.Read(100, 100)
	require.False(t, ok)
	require.Nil(t, data)
	require.False(t, c.Has(100, 100))

	_, err = os.Stat(filepath.Join(dir, FileName(100, 100)))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCache_RegionOptions(t *testing.T) {
	dir := t.TempDir()
	logger, logs := observedLogger(zap.DebugLevel)

	c, err := NewCache(dir, WithCacheLogger(logger), WithRegionOptions(WithReadOnly()))
	require.NoError(t, err)
	defer c.Close()

	require.ErrorIs(t, c.Write(0, 0, []byte("x")), fs.ErrNotExist)

	w, err := NewCache(dir, WithCacheLogger(logger))
	require.NoError(t, err)
	require.NoError(t, w.Write(0, 0, []byte("x")))
	require.NoError(t, w.Close())
	require.Equal(t, 1, logs.FilterMessage("region file created").Len())

	require.ErrorIs(t, c.Write(0, 0, []byte("y")), errs.ErrReadOnly)
	data, ok := c.Read(0, 0)
	require.True(t, ok)
	require.Equal(t, []byte("x"), data)
}

func TestNewCache_InvalidSize(t *testing.T) {
	_, err := NewCache(t.TempDir(), WithCacheSize(0))
	require.Error(t, err)
}
