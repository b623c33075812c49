package stream

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/anvil/endian"
	"github.com/arloliu/anvil/errs"
)

// Writer writes big-endian primitives to an underlying io.Writer.
type Writer struct {
	w       io.Writer
	engine  endian.EndianEngine
	scratch []byte
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       w,
		engine:  endian.GetBigEndianEngine(),
		scratch: make([]byte, 0, 64),
	}
}

func (w *Writer) flush(b []byte) error {
	_, err := w.w.Write(b)
	w.scratch = b[:0]

	return err
}

// WriteInt8 writes a signed byte.
func (w *Writer) WriteInt8(v int8) error {
	return w.WriteUint8(uint8(v)) //nolint:gosec
}

// WriteUint8 writes an unsigned byte.
func (w *Writer) WriteUint8(v uint8) error {
	return w.flush(append(w.scratch[:0], v))
}

// WriteInt16 writes a big-endian signed 16-bit integer.
func (w *Writer) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v)) //nolint:gosec
}

// WriteUint16 writes a big-endian unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	return w.flush(w.engine.AppendUint16(w.scratch[:0], v))
}

// WriteInt32 writes a big-endian signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v)) //nolint:gosec
}

// WriteUint32 writes a big-endian unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	return w.flush(w.engine.AppendUint32(w.scratch[:0], v))
}

// WriteInt64 writes a big-endian signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v)) //nolint:gosec
}

// WriteUint64 writes a big-endian unsigned 64-bit integer.
func (w *Writer) WriteUint64(v uint64) error {
	return w.flush(w.engine.AppendUint64(w.scratch[:0], v))
}

// WriteFloat32 writes a big-endian IEEE 754 single.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a big-endian IEEE 754 double.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteBytes writes b verbatim.
func (w *Writer) WriteBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	_, err := w.w.Write(b)

	return err
}

// WriteUTF writes s as a 16-bit length prefix followed by its modified
// UTF-8 bytes. Strings whose encoding exceeds MaxStringLength are rejected
// with errs.ErrStringTooLong before anything is written.
func (w *Writer) WriteUTF(s string) error {
	n := MUTF8Len(s)
	if n > MaxStringLength {
		return fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, n)
	}

	b := w.engine.AppendUint16(w.scratch[:0], uint16(n)) //nolint:gosec
	b = AppendMUTF8(b, s)

	return w.flush(b)
}
