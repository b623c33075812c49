package nbt

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/stream"
)

// List is an ordered sequence of unnamed tags that all share one kind.
// An empty list has element kind End.
type List struct {
	named
	elems []Tag
}

// NewList creates an empty List.
func NewList(name string) *List {
	return &List{named: named{name}}
}

func (*List) Kind() format.TagKind { return format.TagList }

// Value returns a copy of the element slice.
func (l *List) Value() any { return slices.Clone(l.elems) }

// ElemKind returns the kind shared by all elements, or TagEnd when empty.
func (l *List) ElemKind() format.TagKind {
	if len(l.elems) == 0 {
		return format.TagEnd
	}

	return l.elems[0].Kind()
}

// Append adds tag to the end of the list. The first element fixes the
// list's element kind; a tag of any other kind fails with
// errs.ErrTagKindMismatch and leaves the list unchanged. End tags cannot be
// list elements.
func (l *List) Append(tag Tag) error {
	if tag == nil || tag.Kind() == format.TagEnd {
		return fmt.Errorf("%w: list elements cannot be End", errs.ErrTagKindMismatch)
	}
	if len(l.elems) > 0 && tag.Kind() != l.ElemKind() {
		return fmt.Errorf("%w: cannot append %s to list of %s",
			errs.ErrTagKindMismatch, tag.Kind(), l.ElemKind())
	}

	l.elems = append(l.elems, tag)

	return nil
}

// Get returns the element at index i, or nil when i is out of range.
func (l *List) Get(i int) Tag {
	if i < 0 || i >= len(l.elems) {
		return nil
	}

	return l.elems[i]
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.elems)
}

// Clear removes every element, which also resets the element kind.
func (l *List) Clear() {
	clear(l.elems)
	l.elems = l.elems[:0]
}

// All iterates elements in order.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, t := range l.elems {
			if !yield(i, t) {
				return
			}
		}
	}
}

func (l *List) writePayload(w *stream.Writer) error {
	if err := w.WriteUint8(uint8(l.ElemKind())); err != nil {
		return err
	}
	if err := writeCount(w, len(l.elems)); err != nil {
		return err
	}
	for _, t := range l.elems {
		if err := t.writePayload(w); err != nil {
			return err
		}
	}

	return nil
}

func (l *List) readPayload(d *decoder, depth int) error {
	if err := d.enter(depth); err != nil {
		return err
	}

	b, err := d.r.ReadUint8()
	if err != nil {
		return err
	}
	kind := format.TagKind(b)
	if !kind.Valid() {
		return fmt.Errorf("%w: list element kind %d", errs.ErrUnknownTagKind, b)
	}

	n, err := readCount(d)
	if err != nil {
		return err
	}
	if kind == format.TagEnd && n > 0 {
		return fmt.Errorf("%w: list of End with %d elements", errs.ErrMalformedData, n)
	}

	l.elems = make([]Tag, 0, min(n, maxPrealloc))
	for range n {
		t, err := CreateTag(kind, "")
		if err != nil {
			return err
		}
		if err := t.readPayload(d, depth+1); err != nil {
			return err
		}
		l.elems = append(l.elems, t)
	}

	return nil
}
