package nbt

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/format"
)

func serialize(t *testing.T, root Tag) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, SerializeDocument(root, &buf))

	return buf.Bytes()
}

func TestSerializeDocument_Layout(t *testing.T) {
	root := NewCompound("").Put(NewInt("a", 1))

	expected := []byte{
		0x0a, 0x00, 0x00, // Compound, empty name
		0x03, 0x00, 0x01, 'a', 0x00, 0x00, 0x00, 0x01, // Int "a" = 1
		0x00, // End
	}
	require.Equal(t, expected, serialize(t, root))
}

func TestSerializeDocument_ListLayout(t *testing.T) {
	l := NewList("l")
	require.NoError(t, l.Append(NewShort("ignored", 7)))
	require.NoError(t, l.Append(NewShort("", -1)))
	root := NewCompound("").Put(l).Put(NewList("empty"))

	expected := []byte{
		0x0a, 0x00, 0x00,
		0x09, 0x00, 0x01, 'l', 0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x07, 0xff, 0xff,
		0x09, 0x00, 0x05, 'e', 'm', 'p', 't', 'y', 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00,
	}
	require.Equal(t, expected, serialize(t, root))
}

func TestSerializeDocument_RejectsNonCompound(t *testing.T) {
	var buf bytes.Buffer

	require.ErrorIs(t, SerializeDocument(NewInt("x", 1), &buf), errs.ErrNotCompound)
	require.ErrorIs(t, SerializeDocument(nil, &buf), errs.ErrNotCompound)
	require.ErrorIs(t, SerializeDocument((*Compound)(nil), &buf), errs.ErrNotCompound)
	require.Zero(t, buf.Len())
}

func TestSerializeDocument_StringTooLong(t *testing.T) {
	root := NewCompound("").Put(NewString("s", strings.Repeat("x", 0x10000)))

	err := SerializeDocument(root, &bytes.Buffer{})
	require.ErrorIs(t, err, errs.ErrStringTooLong)
}

func TestRoundTrip_RandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := range 200 {
		root := randomTree(rng, 6)

		data := serialize(t, root)
		parsed, err := ParseDocument(bytes.NewReader(data))
		require.NoError(t, err, "tree %d", i)
		requireSameTree(t, root, parsed)

		require.Equal(t, data, serialize(t, parsed), "tree %d re-encodes differently", i)
	}
}

func TestRoundTrip_AllKinds(t *testing.T) {
	l := NewList("Sections")
	require.NoError(t, l.Append(NewCompound("").Put(NewByte("Y", 3))))
	root := NewCompound("Level").
		Put(NewByte("b", -128)).
		Put(NewShort("s", -32768)).
		Put(NewInt("i", 2147483647)).
		Put(NewLong("l", -9223372036854775808)).
		Put(NewFloat("f", 1.5)).
		Put(NewDouble("d", -0.25)).
		Put(NewByteArray("Blocks", make([]byte, 4096))).
		Put(NewString("str", "é\U0001F600")).
		Put(l).
		Put(NewCompound("nested").Put(NewString("", ""))).
		Put(NewIntArray("ia", []int32{1, -1})).
		Put(NewLongArray("la", []int64{1 << 40}))

	parsed, err := ParseDocument(bytes.NewReader(serialize(t, root)))
	require.NoError(t, err)
	requireSameTree(t, root, parsed)
}

func TestParseDocument_StopsAtDocumentEnd(t *testing.T) {
	data := serialize(t, NewCompound("a"))
	data = append(data, 0xde, 0xad)

	r := bytes.NewReader(data)
	_, err := ParseDocument(r)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"empty input", nil, errs.ErrMalformedData},
		{"root is Int", []byte{0x03, 0x00, 0x00, 0, 0, 0, 1}, errs.ErrNotCompound},
		{"root is End", []byte{0x00}, errs.ErrNotCompound},
		{"unknown root kind", []byte{0x0d, 0x00, 0x00}, errs.ErrUnknownTagKind},
		{"unknown member kind", []byte{0x0a, 0x00, 0x00, 0x20}, errs.ErrUnknownTagKind},
		{"missing End", []byte{0x0a, 0x00, 0x00}, errs.ErrMalformedData},
		{"truncated name", []byte{0x0a, 0x00, 0x05, 'a'}, errs.ErrMalformedData},
		{"truncated payload", []byte{0x0a, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00}, errs.ErrMalformedData},
		{
			"negative byte array count",
			[]byte{0x0a, 0x00, 0x00, 0x07, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0x00},
			errs.ErrMalformedData,
		},
		{
			"negative list count",
			[]byte{0x0a, 0x00, 0x00, 0x09, 0x00, 0x00, 0x01, 0x80, 0x00, 0x00, 0x00, 0x00},
			errs.ErrMalformedData,
		},
		{
			"non-empty list of End",
			[]byte{0x0a, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00},
			errs.ErrMalformedData,
		},
		{
			"unknown list element kind",
			[]byte{0x0a, 0x00, 0x00, 0x09, 0x00, 0x00, 0x0e, 0x00, 0x00, 0x00, 0x00, 0x00},
			errs.ErrUnknownTagKind,
		},
		{
			"huge int array count",
			[]byte{0x0a, 0x00, 0x00, 0x0b, 0x00, 0x00, 0x7f, 0xff, 0xff, 0xff, 0x00},
			errs.ErrMalformedData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := ParseDocument(bytes.NewReader(tt.data))
			require.ErrorIs(t, err, tt.err)
			require.Nil(t, root)
		})
	}
}

func TestParseDocument_EmptyListOfAnyKindDecodesAsEnd(t *testing.T) {
	data := []byte{0x0a, 0x00, 0x00, 0x09, 0x00, 0x01, 'l', 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00}

	root, err := ParseDocument(bytes.NewReader(data))
	require.NoError(t, err)

	l, ok := root.GetList("l")
	require.True(t, ok)
	require.Zero(t, l.Len())
	require.Equal(t, format.TagEnd, l.ElemKind())
}

func TestParseDocument_DuplicateNameLaterWins(t *testing.T) {
	data := []byte{
		0x0a, 0x00, 0x00,
		0x01, 0x00, 0x01, 'a', 0x01,
		0x01, 0x00, 0x01, 'b', 0x02,
		0x01, 0x00, 0x01, 'a', 0x03,
		0x00,
	}

	root, err := ParseDocument(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, root.Names())

	v, ok := root.GetByte("a")
	require.True(t, ok)
	require.Equal(t, int8(3), v)
}

func nestedCompounds(n int) *Compound {
	root := NewCompound("")
	cur := root
	for range n - 1 {
		child := NewCompound("c")
		cur.Put(child)
		cur = child
	}

	return root
}

func TestParseDocument_MaxDepth(t *testing.T) {
	data := serialize(t, nestedCompounds(5))

	_, err := ParseDocument(bytes.NewReader(data), WithMaxDepth(5))
	require.NoError(t, err)

	_, err = ParseDocument(bytes.NewReader(data), WithMaxDepth(4))
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	_, err = ParseDocument(bytes.NewReader(data), WithMaxDepth(0))
	require.Error(t, err)
}

func TestParseDocument_DefaultMaxDepth(t *testing.T) {
	_, err := ParseDocument(bytes.NewReader(serialize(t, nestedCompounds(DefaultMaxDepth))))
	require.NoError(t, err)

	_, err = ParseDocument(bytes.NewReader(serialize(t, nestedCompounds(DefaultMaxDepth+1))))
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

func TestParseDocument_NestedListsCountTowardDepth(t *testing.T) {
	inner := NewList("")
	require.NoError(t, inner.Append(NewInt("", 1)))
	outer := NewList("outer")
	require.NoError(t, outer.Append(inner))
	data := serialize(t, NewCompound("").Put(outer))

	_, err := ParseDocument(bytes.NewReader(data), WithMaxDepth(3))
	require.NoError(t, err)

	_, err = ParseDocument(bytes.NewReader(data), WithMaxDepth(2))
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

func TestCreateTag(t *testing.T) {
	for k := format.TagEnd; k <= format.MaxTagKind; k++ {
		t.Run(k.String(), func(t *testing.T) {
			tag, err := CreateTag(k, "n")
			require.NoError(t, err)
			require.Equal(t, k, tag.Kind())
			if k == format.TagEnd {
				require.Empty(t, tag.Name())
				require.Nil(t, tag.Value())
			} else {
				require.Equal(t, "n", tag.Name())
			}
		})
	}

	_, err := CreateTag(format.MaxTagKind+1, "")
	require.ErrorIs(t, err, errs.ErrUnknownTagKind)
}

func BenchmarkParseDocument(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	root := randomTree(rng, 6)
	var buf bytes.Buffer
	require.NoError(b, SerializeDocument(root, &buf))
	data := buf.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := ParseDocument(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerializeDocument(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	root := randomTree(rng, 6)
	var buf bytes.Buffer

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		if err := SerializeDocument(root, &buf); err != nil {
			b.Fatal(err)
		}
	}
}
