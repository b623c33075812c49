package compress

import (
	"fmt"

	"github.com/klauspost/compress/flate"
)

// Compression levels understood by the deflate-based codecs.
const (
	HuffmanOnly        = flate.HuffmanOnly
	DefaultLevel       = flate.DefaultCompression
	BestSpeed          = flate.BestSpeed
	BestCompression    = flate.BestCompression
	NoCompressionLevel = flate.NoCompression
)

func validateLevel(level int) error {
	if level < HuffmanOnly || level > BestCompression {
		return fmt.Errorf("invalid deflate compression level %d", level)
	}

	return nil
}
