package nbt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/internal/options"
	"github.com/arloliu/anvil/stream"
)

// DefaultMaxDepth is the default limit on Compound and List nesting.
const DefaultMaxDepth = 512

// DecodeOption configures ParseDocument and the document helpers built on it.
type DecodeOption = options.Option[*decodeConfig]

type decodeConfig struct {
	maxDepth int
}

// WithMaxDepth limits how deeply Compounds and Lists may nest in decoded
// input. Deeper input fails with errs.ErrMaxDepthExceeded.
func WithMaxDepth(depth int) DecodeOption {
	return options.New(func(cfg *decodeConfig) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth

		return nil
	})
}

type decoder struct {
	r        *stream.Reader
	maxDepth int
}

func (d *decoder) enter(depth int) error {
	if depth > d.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	return nil
}

func (d *decoder) readNamed(depth int) (Tag, error) {
	b, err := d.r.ReadUint8()
	if err != nil {
		return nil, err
	}

	kind := format.TagKind(b)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagKind, b)
	}
	if kind == format.TagEnd {
		return &End{}, nil
	}

	name, err := d.r.ReadUTF()
	if err != nil {
		return nil, err
	}

	tag, err := CreateTag(kind, name)
	if err != nil {
		return nil, err
	}
	if err := tag.readPayload(d, depth); err != nil {
		return nil, err
	}

	return tag, nil
}

// ParseDocument reads one named tag from r and returns it as the document
// root. The root must be a Compound; anything else fails with
// errs.ErrNotCompound.
//
// Input that ends early, declares a negative count or declares a non-empty
// list of End fails with errs.ErrMalformedData. An unknown kind id fails with
// errs.ErrUnknownTagKind. ParseDocument reads only the bytes of the document
// and never reads ahead of it.
func ParseDocument(r io.Reader, opts ...DecodeOption) (*Compound, error) {
	cfg := &decodeConfig{maxDepth: DefaultMaxDepth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d := &decoder{r: stream.NewReader(r), maxDepth: cfg.maxDepth}
	tag, err := d.readNamed(1)
	if err != nil {
		return nil, truncated(err)
	}

	root, ok := tag.(*Compound)
	if !ok {
		return nil, fmt.Errorf("%w: root is %s", errs.ErrNotCompound, tag.Kind())
	}

	return root, nil
}

// SerializeDocument writes root as a named tag. The root must be a Compound.
// No trailing bytes are written after the Compound's own End terminator.
func SerializeDocument(root Tag, w io.Writer) error {
	if c, ok := root.(*Compound); !ok || c == nil {
		return errs.ErrNotCompound
	}

	bw := bufio.NewWriter(w)
	if err := writeNamed(stream.NewWriter(bw), root); err != nil {
		return err
	}

	return bw.Flush()
}

func writeNamed(w *stream.Writer, tag Tag) error {
	if err := w.WriteUint8(uint8(tag.Kind())); err != nil {
		return err
	}
	if tag.Kind() == format.TagEnd {
		return nil
	}
	if err := w.WriteUTF(tag.Name()); err != nil {
		return err
	}

	return tag.writePayload(w)
}

// truncated marks end-of-input failures as malformed data.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", errs.ErrMalformedData, err)
	}

	return err
}
