package nbt

import (
	"fmt"
	"math"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/stream"
)

// maxPrealloc caps the capacity reserved from an untrusted element count.
const maxPrealloc = 4096

func readCount(d *decoder) (int, error) {
	n, err := d.r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative element count %d", errs.ErrMalformedData, n)
	}

	return int(n), nil
}

func writeCount(w *stream.Writer, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %d elements exceed the 32-bit count", errs.ErrMalformedData, n)
	}

	return w.WriteInt32(int32(n)) //nolint:gosec
}

// ByteArray holds raw bytes.
type ByteArray struct {
	named
	Data []byte
}

// NewByteArray creates a ByteArray tag. The slice is stored, not copied.
func NewByteArray(name string, v []byte) *ByteArray {
	return &ByteArray{named: named{name}, Data: v}
}

func (*ByteArray) Kind() format.TagKind { return format.TagByteArray }
func (t *ByteArray) Value() any         { return t.Data }

func (t *ByteArray) writePayload(w *stream.Writer) error {
	if err := writeCount(w, len(t.Data)); err != nil {
		return err
	}

	return w.WriteBytes(t.Data)
}

func (t *ByteArray) readPayload(d *decoder, _ int) error {
	n, err := readCount(d)
	if err != nil {
		return err
	}

	t.Data, err = d.r.ReadBytes(n)

	return err
}

// IntArray holds signed 32-bit integers.
type IntArray struct {
	named
	Data []int32
}

// NewIntArray creates an IntArray tag. The slice is stored, not copied.
func NewIntArray(name string, v []int32) *IntArray {
	return &IntArray{named: named{name}, Data: v}
}

func (*IntArray) Kind() format.TagKind { return format.TagIntArray }
func (t *IntArray) Value() any         { return t.Data }

func (t *IntArray) writePayload(w *stream.Writer) error {
	if err := writeCount(w, len(t.Data)); err != nil {
		return err
	}
	for _, v := range t.Data {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}

	return nil
}

func (t *IntArray) readPayload(d *decoder, _ int) error {
	n, err := readCount(d)
	if err != nil {
		return err
	}

	t.Data = make([]int32, 0, min(n, maxPrealloc))
	for range n {
		v, err := d.r.ReadInt32()
		if err != nil {
			return err
		}
		t.Data = append(t.Data, v)
	}

	return nil
}

// LongArray holds signed 64-bit integers.
type LongArray struct {
	named
	Data []int64
}

// NewLongArray creates a LongArray tag. The slice is stored, not copied.
func NewLongArray(name string, v []int64) *LongArray {
	return &LongArray{named: named{name}, Data: v}
}

func (*LongArray) Kind() format.TagKind { return format.TagLongArray }
func (t *LongArray) Value() any         { return t.Data }

func (t *LongArray) writePayload(w *stream.Writer) error {
	if err := writeCount(w, len(t.Data)); err != nil {
		return err
	}
	for _, v := range t.Data {
		if err := w.WriteInt64(v); err != nil {
			return err
		}
	}

	return nil
}

func (t *LongArray) readPayload(d *decoder, _ int) error {
	n, err := readCount(d)
	if err != nil {
		return err
	}

	t.Data = make([]int64, 0, min(n, maxPrealloc))
	for range n {
		v, err := d.r.ReadInt64()
		if err != nil {
			return err
		}
		t.Data = append(t.Data, v)
	}

	return nil
}
