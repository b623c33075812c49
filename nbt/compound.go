package nbt

import (
	"iter"
	"slices"

	"github.com/arloliu/anvil/format"
	"github.com/arloliu/anvil/stream"
)

// Compound is a named-member container. Member names are unique and the
// member order of the last read or first insertion is kept for writing.
type Compound struct {
	named
	entries map[string]Tag
	order   []string
}

// NewCompound creates an empty Compound.
func NewCompound(name string) *Compound {
	return &Compound{
		named:   named{name},
		entries: make(map[string]Tag),
	}
}

func (*Compound) Kind() format.TagKind { return format.TagCompound }

// Value returns the Compound itself.
func (c *Compound) Value() any { return c }

// Put stores tag under its own name, replacing any member with that name.
// A replaced member keeps its position. End tags and nil are ignored.
// Put returns c to allow chaining.
func (c *Compound) Put(tag Tag) *Compound {
	if tag == nil || tag.Kind() == format.TagEnd {
		return c
	}

	name := tag.Name()
	if _, ok := c.entries[name]; !ok {
		c.order = append(c.order, name)
	}
	c.entries[name] = tag

	return c
}

// Get returns a member's value. A Compound member is returned as *Compound,
// a List member as []Tag and every other member as its unwrapped payload
// (int8, int16, int32, int64, float32, float64, []byte, string, []int32 or
// []int64).
func (c *Compound) Get(name string) (any, bool) {
	tag, ok := c.entries[name]
	if !ok {
		return nil, false
	}

	return tag.Value(), true
}

// GetTag returns a member without unwrapping it.
func (c *Compound) GetTag(name string) (Tag, bool) {
	tag, ok := c.entries[name]
	return tag, ok
}

// Contains reports whether a member with the given name exists.
func (c *Compound) Contains(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Remove deletes a member. Removing an absent name is a no-op.
func (c *Compound) Remove(name string) {
	c.Pop(name)
}

// Pop deletes a member and returns it.
func (c *Compound) Pop(name string) (Tag, bool) {
	tag, ok := c.entries[name]
	if !ok {
		return nil, false
	}

	delete(c.entries, name)
	if i := slices.Index(c.order, name); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}

	return tag, true
}

// Len returns the number of members.
func (c *Compound) Len() int {
	return len(c.entries)
}

// Names returns the member names in write order.
func (c *Compound) Names() []string {
	return slices.Clone(c.order)
}

// All iterates members in write order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, name := range c.order {
			if !yield(name, c.entries[name]) {
				return
			}
		}
	}
}

// GetCompound returns a Compound member.
func (c *Compound) GetCompound(name string) (*Compound, bool) {
	return getAs[*Compound](c, name)
}

// GetList returns a List member.
func (c *Compound) GetList(name string) (*List, bool) {
	return getAs[*List](c, name)
}

// GetByte returns the payload of a Byte member.
func (c *Compound) GetByte(name string) (int8, bool) {
	t, ok := getAs[*Byte](c, name)
	if !ok {
		return 0, false
	}

	return t.Data, true
}

// GetShort returns the payload of a Short member.
func (c *Compound) GetShort(name string) (int16, bool) {
	t, ok := getAs[*Short](c, name)
	if !ok {
		return 0, false
	}

	return t.Data, true
}

// GetInt returns the payload of an Int member.
func (c *Compound) GetInt(name string) (int32, bool) {
	t, ok := getAs[*Int](c, name)
	if !ok {
		return 0, false
	}

	return t.Data, true
}

// GetLong returns the payload of a Long member.
func (c *Compound) GetLong(name string) (int64, bool) {
	t, ok := getAs[*Long](c, name)
	if !ok {
		return 0, false
	}

	return t.Data, true
}

// GetFloat returns the payload of a Float member.
func (c *Compound) GetFloat(name string) (float32, bool) {
	t, ok := getAs[*Float](c, name)
	if !ok {
		return 0, false
	}

	return t.Data, true
}

// GetDouble returns the payload of a Double member.
func (c *Compound) GetDouble(name string) (float64, bool) {
	t, ok := getAs[*Double](c, name)
	if !ok {
		return 0, false
	}

	return t.Data, true
}

// GetString returns the payload of a String member.
func (c *Compound) GetString(name string) (string, bool) {
	t, ok := getAs[*String](c, name)
	if !ok {
		return "", false
	}

	return t.Data, true
}

// GetByteArray returns the payload of a ByteArray member.
func (c *Compound) GetByteArray(name string) ([]byte, bool) {
	t, ok := getAs[*ByteArray](c, name)
	if !ok {
		return nil, false
	}

	return t.Data, true
}

// GetIntArray returns the payload of an IntArray member.
func (c *Compound) GetIntArray(name string) ([]int32, bool) {
	t, ok := getAs[*IntArray](c, name)
	if !ok {
		return nil, false
	}

	return t.Data, true
}

// GetLongArray returns the payload of a LongArray member.
func (c *Compound) GetLongArray(name string) ([]int64, bool) {
	t, ok := getAs[*LongArray](c, name)
	if !ok {
		return nil, false
	}

	return t.Data, true
}

func getAs[T Tag](c *Compound, name string) (T, bool) {
	t, ok := c.entries[name].(T)
	return t, ok
}

func (c *Compound) writePayload(w *stream.Writer) error {
	for _, name := range c.order {
		if err := writeNamed(w, c.entries[name]); err != nil {
			return err
		}
	}

	return w.WriteUint8(uint8(format.TagEnd))
}

func (c *Compound) readPayload(d *decoder, depth int) error {
	if err := d.enter(depth); err != nil {
		return err
	}

	for {
		tag, err := d.readNamed(depth + 1)
		if err != nil {
			return err
		}
		if tag.Kind() == format.TagEnd {
			return nil
		}
		c.Put(tag)
	}
}
