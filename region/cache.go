package region

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/arloliu/anvil/internal/options"
)

// DefaultCacheSize is the default number of region files a Cache keeps open.
const DefaultCacheSize = 16

type regionKey struct {
	rx, rz int
}

// Cache addresses chunks by world chunk coordinates across the region files
// of one directory. Chunk (cx, cz) lives in r.<cx>>5>.<cz>>5>.mca at local
// coordinates (cx&31, cz&31).
//
// At most the configured number of files stay open; the least recently used
// one is closed when another must be opened. Like File, a Cache is not safe
// for concurrent use.
type Cache struct {
	dir        string
	size       int
	log        *zap.Logger
	regionOpts []Option

	files     *lru.Cache[regionKey, *File]
	closeErrs []error
}

// CacheOption configures a Cache.
type CacheOption = options.Option[*Cache]

// WithCacheSize sets how many region files stay open at once.
func WithCacheSize(size int) CacheOption {
	return options.New(func(c *Cache) error {
		if size < 1 {
			return fmt.Errorf("cache size must be positive, got %d", size)
		}
		c.size = size

		return nil
	})
}

// WithCacheLogger sets the logger for the cache and the region files it opens.
func WithCacheLogger(logger *zap.Logger) CacheOption {
	return options.NoError(func(c *Cache) {
		if logger != nil {
			c.log = logger
		}
	})
}

// WithRegionOptions sets options applied to every region file the cache
// opens. They are applied after the cache's own logger.
func WithRegionOptions(opts ...Option) CacheOption {
	return options.NoError(func(c *Cache) {
		c.regionOpts = append(c.regionOpts, opts...)
	})
}

// NewCache creates a cache over the region files in dir. The directory must
// exist.
func NewCache(dir string, opts ...CacheOption) (*Cache, error) {
	c := &Cache{
		dir:  dir,
		size: DefaultCacheSize,
		log:  zap.NewNop(),
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	files, err := lru.NewWithEvict[regionKey, *File](c.size, c.closeEvicted)
	if err != nil {
		return nil, err
	}
	c.files = files

	return c, nil
}

// FileName returns the region file name holding world chunk (cx, cz).
func FileName(cx, cz int) string {
	return fmt.Sprintf("r.%d.%d.mca", cx>>5, cz>>5)
}

// Read returns the decompressed record of world chunk (cx, cz). A missing
// region file reports (nil, false) without creating it.
func (c *Cache) Read(cx, cz int) ([]byte, bool) {
	f, err := c.file(cx, cz, false)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.Warn("region file unavailable",
				zap.Int("cx", cx), zap.Int("cz", cz), zap.Error(err))
		}

		return nil, false
	}

	return f.Read(cx&(ChunksPerAxis-1), cz&(ChunksPerAxis-1))
}

// Has reports whether world chunk (cx, cz) is stored.
func (c *Cache) Has(cx, cz int) bool {
	f, err := c.file(cx, cz, false)
	if err != nil {
		return false
	}

	return f.Has(cx&(ChunksPerAxis-1), cz&(ChunksPerAxis-1))
}

// Write stores data as world chunk (cx, cz), creating the region file when
// needed.
func (c *Cache) Write(cx, cz int, data []byte) error {
	f, err := c.file(cx, cz, true)
	if err != nil {
		return err
	}

	return f.Write(cx&(ChunksPerAxis-1), cz&(ChunksPerAxis-1), data)
}

// Len returns the number of open region files.
func (c *Cache) Len() int {
	return c.files.Len()
}

// Close closes every open region file.
func (c *Cache) Close() error {
	c.files.Purge()

	err := errors.Join(c.closeErrs...)
	c.closeErrs = nil

	return err
}

func (c *Cache) file(cx, cz int, create bool) (*File, error) {
	key := regionKey{rx: cx >> 5, rz: cz >> 5}
	if f, ok := c.files.Get(key); ok {
		return f, nil
	}

	path := filepath.Join(c.dir, FileName(cx, cz))
	if !create {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
	}

	opts := append([]Option{WithLogger(c.log)}, c.regionOpts...)
	f, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	c.files.Add(key, f)

	return f, nil
}

// closeEvicted runs as the LRU eviction callback.
func (c *Cache) closeEvicted(_ regionKey, f *File) {
	if err := f.Close(); err != nil {
		c.log.Error("can't close region file", zap.String("path", f.Path()), zap.Error(err))
		c.closeErrs = append(c.closeErrs, err)
	}
}
