package stream

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/anvil/errs"
)

func TestWriter_BigEndianLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteInt8(-1))
	require.NoError(t, w.WriteInt16(0x0102))
	require.NoError(t, w.WriteInt32(-2))
	require.NoError(t, w.WriteInt64(0x0102030405060708))
	require.NoError(t, w.WriteUTF("hi"))

	expected := []byte{
		0xFF,
		0x01, 0x02,
		0xFF, 0xFF, 0xFF, 0xFE,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x00, 0x02, 'h', 'i',
	}
	require.Equal(t, expected, buf.Bytes())
}

func TestReaderWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteInt8(math.MinInt8))
	require.NoError(t, w.WriteUint8(math.MaxUint8))
	require.NoError(t, w.WriteInt16(math.MinInt16))
	require.NoError(t, w.WriteUint16(math.MaxUint16))
	require.NoError(t, w.WriteInt32(math.MinInt32))
	require.NoError(t, w.WriteUint32(math.MaxUint32))
	require.NoError(t, w.WriteInt64(math.MinInt64))
	require.NoError(t, w.WriteUint64(math.MaxUint64))
	require.NoError(t, w.WriteFloat32(3.25))
	require.NoError(t, w.WriteFloat64(-1.0e300))
	require.NoError(t, w.WriteBytes([]byte{9, 8, 7}))
	require.NoError(t, w.WriteBytes(nil))
	require.NoError(t, w.WriteUTF("Zażółć\x00\U0001F600"))

	r := NewReader(&buf)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(math.MinInt8), i8)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(math.MaxUint8), u8)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(math.MinInt16), i16)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(math.MaxUint16), u16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), i32)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), i64)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u64)

	f32, err := r.ReadFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(3.25), f32)

	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, -1.0e300, f64)

	raw, err := r.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 8, 7}, raw)

	s, err := r.ReadUTF()
	require.NoError(t, err)
	require.Equal(t, "Zażółć\x00\U0001F600", s)

	_, err = r.ReadUint8()
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x01}))
	_, err := r.ReadInt32()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	r = NewReader(bytes.NewReader([]byte{0x00, 0x05, 'a', 'b'}))
	_, err = r.ReadUTF()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReader_ReadBytes(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3}))

	b, err := r.ReadBytes(0)
	require.NoError(t, err)
	require.Empty(t, b)

	_, err = r.ReadBytes(-1)
	require.ErrorIs(t, err, errs.ErrMalformedData)

	// a huge claimed length fails on the data actually present
	_, err = r.ReadBytes(math.MaxInt32)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
