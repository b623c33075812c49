package region

import (
	"time"

	"go.uber.org/zap"

	"github.com/arloliu/anvil/compress"
	"github.com/arloliu/anvil/internal/options"
)

// Option configures a File at Open.
type Option = options.Option[*File]

// WithLogger sets the logger that receives diagnostics about created,
// salvaged and corrupt files. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(f *File) {
		if logger != nil {
			f.log = logger
		}
	})
}

// WithClock sets the time source for chunk timestamps.
func WithClock(now func() time.Time) Option {
	return options.NoError(func(f *File) {
		if now != nil {
			f.now = now
		}
	})
}

// WithCompressionLevel sets the zlib level for newly written chunks,
// from compress.HuffmanOnly (-2) to compress.BestCompression (9).
func WithCompressionLevel(level int) Option {
	return options.New(func(f *File) error {
		codec, err := compress.NewZlibCompressor(level)
		if err != nil {
			return err
		}
		f.codec = codec

		return nil
	})
}

// WithReadOnly opens the file without creating, padding or writing it.
// Writes fail with errs.ErrReadOnly.
func WithReadOnly() Option {
	return options.NoError(func(f *File) {
		f.readOnly = true
	})
}
