package netbuf

import (
	"bytes"
)

var crlf = []byte("\r\n")

// IndexByte returns the offset of the first occurrence of c in the
// readable region, or -1 if c is not present.
func (b *Buffer) IndexByte(c byte) int {
	return bytes.IndexByte(b.Peek(), c)
}

// FindCRLF returns the offset of the first "\r\n" in the readable
// region, or -1 if not present.
func (b *Buffer) FindCRLF() int {
	return bytes.Index(b.Peek(), crlf)
}

// FindEOL returns the offset of the first '\n' in the readable region,
// or -1 if not present.
func (b *Buffer) FindEOL() int {
	return b.IndexByte('\n')
}
