package stream

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/anvil/endian"
	"github.com/arloliu/anvil/errs"
)

// Reader reads big-endian primitives from an underlying io.Reader.
//
// A read that hits the end of input before the first byte of a value
// returns io.EOF; a value cut short returns io.ErrUnexpectedEOF.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:      r,
		engine: endian.GetBigEndianEngine(),
	}
}

func (r *Reader) fill(n int) ([]byte, error) {
	b := r.scratch[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err //nolint:gosec
}

// ReadUint8 reads an unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt16 reads a big-endian signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err //nolint:gosec
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err //nolint:gosec
}

// ReadUint32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadInt64 reads a big-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err //nolint:gosec
}

// ReadUint64 reads a big-endian unsigned 64-bit integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadFloat32 reads a big-endian IEEE 754 single.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads a big-endian IEEE 754 double.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBytes reads exactly n raw bytes.
//
// The buffer grows with the data actually read, so a corrupt length prefix
// cannot force a huge allocation up front.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", errs.ErrMalformedData, n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	b, err := io.ReadAll(io.LimitReader(r.r, int64(n)))
	if err != nil {
		return nil, err
	}
	if len(b) < n {
		return nil, io.ErrUnexpectedEOF
	}

	return b, nil
}

// ReadUTF reads a 16-bit length prefix followed by that many bytes of
// modified UTF-8.
func (r *Reader) ReadUTF() (string, error) {
	n, err := r.ReadUint16()
	if err != nil {
		return "", err
	}

	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}

	return DecodeMUTF8(b)
}
