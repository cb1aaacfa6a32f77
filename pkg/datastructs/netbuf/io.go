package netbuf

import (
	"io"
)

// The io adapters below follow io conventions and return errors for
// external conditions (source drained, sink failed). Contract
// violations on the buffer itself still panic, as everywhere else in
// this package.

// Read implements io.Reader, draining up to len(p) readable bytes into
// p. It returns io.EOF when the buffer is empty.
func (b *Buffer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.IsEmpty() {
		return 0, io.EOF
	}
	n := copy(p, b.Peek())
	b.Retrieve(n)
	return n, nil
}

// ReadByte implements io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	if b.IsEmpty() {
		return 0, io.EOF
	}
	c := b.Peek()[0]
	b.Retrieve(1)
	return c, nil
}

// Write implements io.Writer, appending p to the content zone.
func (b *Buffer) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	b.EnsureWritable(1)
	b.storage[b.writerIndex] = c
	b.writerIndex++
	return nil
}

// WriteString appends s without an intermediate copy.
func (b *Buffer) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}

// ReadOnce performs a single fill-then-commit read from r: it
// guarantees writable space, lets r write into WritableSlice and
// commits the bytes actually read. r's error is returned verbatim.
func (b *Buffer) ReadOnce(r io.Reader) (int, error) {
	b.EnsureWritable(minReadSize)
	n, err := r.Read(b.WritableSlice())
	if n < 0 {
		panic("netbuf: reader returned negative count")
	}
	b.HasWritten(n)
	return n, err
}

// ReadFrom implements io.ReaderFrom, appending from r until EOF.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		n, err := b.ReadOnce(r)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo implements io.WriterTo, flushing the readable region to w
// and consuming the bytes w accepted.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	readable := b.ReadableBytes()
	if readable == 0 {
		return 0, nil
	}
	n, err := w.Write(b.Peek())
	if n > readable {
		panic("netbuf: writer returned count beyond content")
	}
	b.Retrieve(n)
	if err == nil && n < readable {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
