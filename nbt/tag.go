package nbt

import (
	"fmt"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/stream"
)

// Tag is one node of a document tree.
//
// The set of implementations is closed: End, Byte, Short, Int, Long, Float,
// Double, ByteArray, String, List, Compound, IntArray and LongArray. A tag's
// kind never changes. Names only matter for Compound members; list elements
// are written without their names.
type Tag interface {
	// Kind returns the tag's fixed kind id.
	Kind() format.TagKind
	// Name returns the tag's name within its parent Compound.
	Name() string
	// SetName renames the tag. Renaming a tag that is already a Compound
	// member does not re-key it; remove and put it again instead.
	SetName(name string)
	// Value returns the tag's payload: the Go scalar or slice for leaf kinds,
	// the element slice for a List and the Compound itself for a Compound.
	Value() any
	String() string

	writePayload(w *stream.Writer) error
	readPayload(d *decoder, depth int) error
}

type named struct {
	name string
}

func (n *named) Name() string {
	return n.name
}

func (n *named) SetName(name string) {
	n.name = name
}

// CreateTag returns an empty-valued tag of the given kind.
// Kinds outside 0-12 fail with errs.ErrUnknownTagKind.
func CreateTag(kind format.TagKind, name string) (Tag, error) {
	switch kind {
	case format.TagEnd:
		return &End{}, nil
	case format.TagByte:
		return NewByte(name, 0), nil
	case format.TagShort:
		return NewShort(name, 0), nil
	case format.TagInt:
		return NewInt(name, 0), nil
	case format.TagLong:
		return NewLong(name, 0), nil
	case format.TagFloat:
		return NewFloat(name, 0), nil
	case format.TagDouble:
		return NewDouble(name, 0), nil
	case format.TagByteArray:
		return NewByteArray(name, []byte{}), nil
	case format.TagString:
		return NewString(name, ""), nil
	case format.TagList:
		return NewList(name), nil
	case format.TagCompound:
		return NewCompound(name), nil
	case format.TagIntArray:
		return NewIntArray(name, []int32{}), nil
	case format.TagLongArray:
		return NewLongArray(name, []int64{}), nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagKind, kind)
	}
}

// End terminates a Compound payload on the wire. It is never stored as a
// Compound member or List element.
type End struct{}

func (*End) Kind() format.TagKind              { return format.TagEnd }
func (*End) Name() string                      { return "" }
func (*End) SetName(string)                    {}
func (*End) Value() any                        { return nil }
func (*End) writePayload(*stream.Writer) error { return nil }
func (*End) readPayload(*decoder, int) error   { return nil }

// Byte holds a signed 8-bit integer.
type Byte struct {
	named
	Data int8
}

// NewByte creates a Byte tag.
func NewByte(name string, v int8) *Byte {
	return &Byte{named: named{name}, Data: v}
}

func (*Byte) Kind() format.TagKind { return format.TagByte }
func (t *Byte) Value() any         { return t.Data }

func (t *Byte) writePayload(w *stream.Writer) error {
	return w.WriteInt8(t.Data)
}

func (t *Byte) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadInt8()
	return err
}

// Short holds a signed 16-bit integer.
type Short struct {
	named
	Data int16
}

// NewShort creates a Short tag.
func NewShort(name string, v int16) *Short {
	return &Short{named: named{name}, Data: v}
}

func (*Short) Kind() format.TagKind { return format.TagShort }
func (t *Short) Value() any         { return t.Data }

func (t *Short) writePayload(w *stream.Writer) error {
	return w.WriteInt16(t.Data)
}

func (t *Short) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadInt16()
	return err
}

// Int holds a signed 32-bit integer.
type Int struct {
	named
	Data int32
}

// NewInt creates an Int tag.
func NewInt(name string, v int32) *Int {
	return &Int{named: named{name}, Data: v}
}

func (*Int) Kind() format.TagKind { return format.TagInt }
func (t *Int) Value() any         { return t.Data }

func (t *Int) writePayload(w *stream.Writer) error {
	return w.WriteInt32(t.Data)
}

func (t *Int) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadInt32()
	return err
}

// Long holds a signed 64-bit integer.
type Long struct {
	named
	Data int64
}

// NewLong creates a Long tag.
func NewLong(name string, v int64) *Long {
	return &Long{named: named{name}, Data: v}
}

func (*Long) Kind() format.TagKind { return format.TagLong }
func (t *Long) Value() any         { return t.Data }

func (t *Long) writePayload(w *stream.Writer) error {
	return w.WriteInt64(t.Data)
}

func (t *Long) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadInt64()
	return err
}

// Float holds an IEEE 754 single.
type Float struct {
	named
	Data float32
}

// NewFloat creates a Float tag.
func NewFloat(name string, v float32) *Float {
	return &Float{named: named{name}, Data: v}
}

func (*Float) Kind() format.TagKind { return format.TagFloat }
func (t *Float) Value() any         { return t.Data }

func (t *Float) writePayload(w *stream.Writer) error {
	return w.WriteFloat32(t.Data)
}

func (t *Float) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadFloat32()
	return err
}

// Double holds an IEEE 754 double.
type Double struct {
	named
	Data float64
}

// NewDouble creates a Double tag.
func NewDouble(name string, v float64) *Double {
	return &Double{named: named{name}, Data: v}
}

func (*Double) Kind() format.TagKind { return format.TagDouble }
func (t *Double) Value() any         { return t.Data }

func (t *Double) writePayload(w *stream.Writer) error {
	return w.WriteFloat64(t.Data)
}

func (t *Double) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadFloat64()
	return err
}

// String holds text; it is stored in modified UTF-8 and limited to 65535
// encoded bytes.
type String struct {
	named
	Data string
}

// NewString creates a String tag.
func NewString(name string, v string) *String {
	return &String{named: named{name}, Data: v}
}

func (*String) Kind() format.TagKind { return format.TagString }
func (t *String) Value() any         { return t.Data }

func (t *String) writePayload(w *stream.Writer) error {
	return w.WriteUTF(t.Data)
}

func (t *String) readPayload(d *decoder, _ int) (err error) {
	t.Data, err = d.r.ReadUTF()
	return err
}
