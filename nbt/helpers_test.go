package nbt

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/anvil/format"
)

var leafKinds = []format.TagKind{
	format.TagByte, format.TagShort, format.TagInt, format.TagLong,
	format.TagFloat, format.TagDouble, format.TagByteArray, format.TagString,
	format.TagIntArray, format.TagLongArray,
}

var names = []string{"", "Level", "xPos", "café", "nul\u0000byte", "\U0001F600 face"}

// randomTree builds a Compound with every kind present somewhere below it.
// Floats are drawn from finite ranges so trees compare equal after a round
// trip.
func randomTree(rng *rand.Rand, maxDepth int) *Compound {
	root := NewCompound("root")
	fillCompound(rng, root, maxDepth-1)

	return root
}

func fillCompound(rng *rand.Rand, c *Compound, depth int) {
	n := rng.Intn(6)
	for i := range n {
		name := fmt.Sprintf("%s%d", names[rng.Intn(len(names))], i)
		c.Put(randomTag(rng, randomKind(rng, depth), name, depth))
	}
}

func randomKind(rng *rand.Rand, depth int) format.TagKind {
	if depth <= 0 || rng.Intn(3) > 0 {
		return leafKinds[rng.Intn(len(leafKinds))]
	}
	if rng.Intn(2) == 0 {
		return format.TagList
	}

	return format.TagCompound
}

func randomTag(rng *rand.Rand, kind format.TagKind, name string, depth int) Tag {
	switch kind {
	case format.TagByte:
		return NewByte(name, int8(rng.Intn(256)-128))
	case format.TagShort:
		return NewShort(name, int16(rng.Intn(1<<16)-1<<15))
	case format.TagInt:
		return NewInt(name, rng.Int31()-rng.Int31())
	case format.TagLong:
		return NewLong(name, rng.Int63()-rng.Int63())
	case format.TagFloat:
		return NewFloat(name, rng.Float32()*1e6-5e5)
	case format.TagDouble:
		return NewDouble(name, rng.NormFloat64()*1e12)
	case format.TagByteArray:
		b := make([]byte, rng.Intn(64))
		rng.Read(b)
		return NewByteArray(name, b)
	case format.TagString:
		return NewString(name, names[rng.Intn(len(names))])
	case format.TagIntArray:
		v := make([]int32, rng.Intn(16))
		for i := range v {
			v[i] = rng.Int31()
		}
		return NewIntArray(name, v)
	case format.TagLongArray:
		v := make([]int64, rng.Intn(16))
		for i := range v {
			v[i] = -rng.Int63()
		}
		return NewLongArray(name, v)
	case format.TagList:
		l := NewList(name)
		elemKind := randomKind(rng, depth-1)
		for range rng.Intn(5) {
			if err := l.Append(randomTag(rng, elemKind, "", depth-1)); err != nil {
				panic(err)
			}
		}
		return l
	case format.TagCompound:
		c := NewCompound(name)
		fillCompound(rng, c, depth-1)
		return c
	default:
		panic(fmt.Sprintf("unexpected kind %s", kind))
	}
}

// requireSameTree compares two trees kind by kind, name by name and value
// by value, including member order.
func requireSameTree(t *testing.T, want, got Tag) {
	t.Helper()

	require.Equal(t, want.Kind(), got.Kind())
	require.Equal(t, want.Name(), got.Name())

	switch w := want.(type) {
	case *Compound:
		g := got.(*Compound)
		require.Equal(t, w.Names(), g.Names())
		for name, child := range w.All() {
			gc, ok := g.GetTag(name)
			require.True(t, ok, "missing member %q", name)
			requireSameTree(t, child, gc)
		}
	case *List:
		g := got.(*List)
		require.Equal(t, w.Len(), g.Len())
		require.Equal(t, w.ElemKind(), g.ElemKind())
		for i, child := range w.All() {
			requireSameTree(t, child, g.Get(i))
		}
	default:
		require.Equal(t, want.Value(), got.Value())
	}
}
