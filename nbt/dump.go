package nbt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const dumpIndent = "  "

// Dump writes an indented tree view of tag to w.
func Dump(w io.Writer, tag Tag) error {
	var sb strings.Builder
	dumpTag(&sb, tag, 0)
	_, err := io.WriteString(w, sb.String())

	return err
}

func dumpTag(sb *strings.Builder, tag Tag, level int) {
	indent := strings.Repeat(dumpIndent, level)
	sb.WriteString(indent)
	sb.WriteString(tag.String())
	sb.WriteByte('\n')

	switch t := tag.(type) {
	case *Compound:
		sb.WriteString(indent + "{\n")
		for _, c := range t.All() {
			dumpTag(sb, c, level+1)
		}
		sb.WriteString(indent + "}\n")
	case *List:
		sb.WriteString(indent + "{\n")
		for _, c := range t.All() {
			dumpTag(sb, c, level+1)
		}
		sb.WriteString(indent + "}\n")
	}
}

func header(tag Tag) string {
	if tag.Name() == "" {
		return tag.Kind().String()
	}

	return tag.Kind().String() + "(" + strconv.Quote(tag.Name()) + ")"
}

func count(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}

	return strconv.Itoa(n) + " " + many
}

func (*End) String() string { return "End" }

func (t *Byte) String() string   { return fmt.Sprintf("%s: %d", header(t), t.Data) }
func (t *Short) String() string  { return fmt.Sprintf("%s: %d", header(t), t.Data) }
func (t *Int) String() string    { return fmt.Sprintf("%s: %d", header(t), t.Data) }
func (t *Long) String() string   { return fmt.Sprintf("%s: %dL", header(t), t.Data) }
func (t *Float) String() string  { return fmt.Sprintf("%s: %gf", header(t), t.Data) }
func (t *Double) String() string { return fmt.Sprintf("%s: %g", header(t), t.Data) }
func (t *String) String() string { return fmt.Sprintf("%s: %q", header(t), t.Data) }

func (t *ByteArray) String() string {
	return fmt.Sprintf("%s: [%s]", header(t), count(len(t.Data), "byte", "bytes"))
}

func (t *IntArray) String() string {
	return fmt.Sprintf("%s: [%s]", header(t), count(len(t.Data), "int", "ints"))
}

func (t *LongArray) String() string {
	return fmt.Sprintf("%s: [%s]", header(t), count(len(t.Data), "long", "longs"))
}

func (t *List) String() string {
	return fmt.Sprintf("%s: %s of %s", header(t), count(t.Len(), "entry", "entries"), t.ElemKind())
}

func (c *Compound) String() string {
	return fmt.Sprintf("%s: %s", header(c), count(c.Len(), "entry", "entries"))
}
