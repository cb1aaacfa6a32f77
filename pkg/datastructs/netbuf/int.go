package netbuf

import (
	"encoding/binary"
)

// Fixed-width integer accessors. All multi-byte values are written and
// read in network byte order (big endian), so buffers fed from and
// flushed to sockets carry wire-compatible frames.

// AppendInt64 appends x as 8 big-endian bytes.
func (b *Buffer) AppendInt64(x int64) {
	var s [8]byte
	binary.BigEndian.PutUint64(s[:], uint64(x))
	b.Append(s[:])
}

// AppendInt32 appends x as 4 big-endian bytes.
func (b *Buffer) AppendInt32(x int32) {
	var s [4]byte
	binary.BigEndian.PutUint32(s[:], uint32(x))
	b.Append(s[:])
}

// AppendInt16 appends x as 2 big-endian bytes.
func (b *Buffer) AppendInt16(x int16) {
	var s [2]byte
	binary.BigEndian.PutUint16(s[:], uint16(x))
	b.Append(s[:])
}

// AppendInt8 appends x as a single byte.
func (b *Buffer) AppendInt8(x int8) {
	var s [1]byte
	s[0] = byte(x)
	b.Append(s[:])
}

// PeekInt64 reads the first 8 readable bytes as a big-endian int64
// without consuming them.
func (b *Buffer) PeekInt64() int64 {
	b.mustReadable(8)
	return int64(binary.BigEndian.Uint64(b.Peek()))
}

// PeekInt32 reads the first 4 readable bytes as a big-endian int32
// without consuming them.
func (b *Buffer) PeekInt32() int32 {
	b.mustReadable(4)
	return int32(binary.BigEndian.Uint32(b.Peek()))
}

// PeekInt16 reads the first 2 readable bytes as a big-endian int16
// without consuming them.
func (b *Buffer) PeekInt16() int16 {
	b.mustReadable(2)
	return int16(binary.BigEndian.Uint16(b.Peek()))
}

// PeekInt8 reads the first readable byte as an int8 without consuming it.
func (b *Buffer) PeekInt8() int8 {
	b.mustReadable(1)
	return int8(b.Peek()[0])
}

// RetrieveInt64 consumes 8 bytes, discarding the value. Pair with a
// prior PeekInt64.
func (b *Buffer) RetrieveInt64() {
	b.Retrieve(8)
}

// RetrieveInt32 consumes 4 bytes, discarding the value. Pair with a
// prior PeekInt32.
func (b *Buffer) RetrieveInt32() {
	b.Retrieve(4)
}

// RetrieveInt16 consumes 2 bytes, discarding the value. Pair with a
// prior PeekInt16.
func (b *Buffer) RetrieveInt16() {
	b.Retrieve(2)
}

// RetrieveInt8 consumes 1 byte, discarding the value. Pair with a
// prior PeekInt8.
func (b *Buffer) RetrieveInt8() {
	b.Retrieve(1)
}

// ReadInt64 peeks and consumes a big-endian int64.
func (b *Buffer) ReadInt64() int64 {
	x := b.PeekInt64()
	b.RetrieveInt64()
	return x
}

// ReadInt32 peeks and consumes a big-endian int32.
func (b *Buffer) ReadInt32() int32 {
	x := b.PeekInt32()
	b.RetrieveInt32()
	return x
}

// ReadInt16 peeks and consumes a big-endian int16.
func (b *Buffer) ReadInt16() int16 {
	x := b.PeekInt16()
	b.RetrieveInt16()
	return x
}

// ReadInt8 peeks and consumes an int8.
func (b *Buffer) ReadInt8() int8 {
	x := b.PeekInt8()
	b.RetrieveInt8()
	return x
}

// PrependInt32 writes x as 4 big-endian bytes in front of the content,
// the usual length-prefix move after a payload is staged.
func (b *Buffer) PrependInt32(x int32) {
	var s [4]byte
	binary.BigEndian.PutUint32(s[:], uint32(x))
	b.Prepend(s[:])
}

// PrependInt16 writes x as 2 big-endian bytes in front of the content.
func (b *Buffer) PrependInt16(x int16) {
	var s [2]byte
	binary.BigEndian.PutUint16(s[:], uint16(x))
	b.Prepend(s[:])
}

// PrependInt8 writes x as a single byte in front of the content.
func (b *Buffer) PrependInt8(x int8) {
	var s [1]byte
	s[0] = byte(x)
	b.Prepend(s[:])
}
