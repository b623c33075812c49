package region

import (
	"io"

	"github.com/arloliu/anvil/errs"
	"github.com/arloliu/anvil/internal/pool"
)

type chunkWriter struct {
	file *File
	x, z int
	buf  *pool.ByteBuffer
}

// NewChunkWriter returns a writer that collects a record for (x, z) in a
// pooled buffer. Close compresses and stores it with Write and returns the
// buffer to the pool; a record that is never closed is never stored.
func (f *File) NewChunkWriter(x, z int) io.WriteCloser {
	return &chunkWriter{file: f, x: x, z: z, buf: pool.GetChunkBuffer()}
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if w.buf == nil {
		return 0, errs.ErrClosed
	}

	return w.buf.Write(p)
}

func (w *chunkWriter) Close() error {
	if w.buf == nil {
		return errs.ErrClosed
	}

	buf := w.buf
	w.buf = nil
	defer pool.PutChunkBuffer(buf)

	return w.file.Write(w.x, w.z, buf.Bytes())
}
