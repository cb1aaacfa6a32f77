package netbuf

import (
	"fmt"

	"github.com/huynhanx03/go-netbuf/pkg/pool/byteslice"
	"github.com/huynhanx03/go-netbuf/pkg/utils"
)

// Buffer is a growable byte buffer for network I/O staging. Incoming
// bytes are appended after the writer cursor, consumers retrieve from
// the reader cursor, and a reserved region before the content leaves
// room to prepend a small framing header without moving the payload:
//
//	+-------------------+------------------+------------------+
//	| prependable bytes |  readable bytes  |  writable bytes  |
//	|                   |    (content)     |                  |
//	+-------------------+------------------+------------------+
//	|                   |                  |                  |
//	0       <=     readerIndex  <=   writerIndex   <=      cap
//
// Storage comes from the byteslice pool and is released back to it on
// growth, Shrink and Release.
// It is NOT thread-safe.
type Buffer struct {
	storage     []byte // len(storage) is the buffer capacity
	readerIndex int
	writerIndex int
	prependSize int // reserved bytes kept in front of the content zone
	maxCapacity int // maximum allowed capacity (panic if exceeded), 0 = unbounded
}

// New creates a Buffer with the given initial content capacity.
// Non-positive sizes fall back to the default of 1024 bytes.
func New(initialSize int) *Buffer {
	if initialSize <= 0 {
		initialSize = defaultBufferSize
	}
	return newBuffer(defaultPrependSize, initialSize, 0)
}

func newBuffer(prependSize, initialSize, maxCapacity int) *Buffer {
	return &Buffer{
		storage:     byteslice.Get(prependSize + initialSize),
		readerIndex: prependSize,
		writerIndex: prependSize,
		prependSize: prependSize,
		maxCapacity: maxCapacity,
	}
}

// WithPrependSize sets the reserved prepend region. It must be called
// before any content is staged; the empty buffer is rebuilt around the
// new reserve.
func (b *Buffer) WithPrependSize(n int) *Buffer {
	b.mustActive()
	if n < 0 {
		panic("netbuf: negative prepend size")
	}
	if !b.IsEmpty() {
		panic("netbuf: prepend size must be set before use")
	}
	initialSize := len(b.storage) - b.prependSize
	byteslice.Put(b.storage)
	b.storage = byteslice.Get(n + initialSize)
	b.readerIndex = n
	b.writerIndex = n
	b.prependSize = n
	return b
}

// WithMaxCapacity sets the hard limit for buffer growth. Zero or
// negative means unbounded.
func (b *Buffer) WithMaxCapacity(max int) *Buffer {
	b.maxCapacity = max
	return b
}

// ReadableBytes returns the number of bytes in the content zone.
func (b *Buffer) ReadableBytes() int {
	return b.writerIndex - b.readerIndex
}

// WritableBytes returns the number of bytes appendable without growth.
func (b *Buffer) WritableBytes() int {
	return len(b.storage) - b.writerIndex
}

// PrependableBytes returns the room available in front of the content.
func (b *Buffer) PrependableBytes() int {
	return b.readerIndex
}

// Len returns the number of readable bytes.
func (b *Buffer) Len() int {
	return b.ReadableBytes()
}

// Cap returns the total storage capacity.
func (b *Buffer) Cap() int {
	return len(b.storage)
}

// IsEmpty reports whether the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return b.ReadableBytes() == 0
}

// Peek returns the content zone as a borrowed view. The view is valid
// only until the next mutating call on the buffer.
func (b *Buffer) Peek() []byte {
	b.mustActive()
	return b.storage[b.readerIndex:b.writerIndex]
}

// Retrieve consumes the first n readable bytes. Consuming everything
// resets both cursors to the front of the content zone, reclaiming all
// slack for reuse.
func (b *Buffer) Retrieve(n int) {
	b.mustActive()
	b.mustReadable(n)
	if n < b.ReadableBytes() {
		b.readerIndex += n
		return
	}
	b.RetrieveAll()
}

// RetrieveAll drops all content and rewinds both cursors to the front
// of the content zone. Capacity is retained.
func (b *Buffer) RetrieveAll() {
	b.mustActive()
	b.readerIndex = b.prependSize
	b.writerIndex = b.prependSize
}

// Reset is an alias for RetrieveAll.
func (b *Buffer) Reset() {
	b.RetrieveAll()
}

// RetrieveUntil consumes the readable bytes in front of end, where end
// must be a suffix of the view returned by Peek (typically the
// remainder after a delimiter search).
func (b *Buffer) RetrieveUntil(end []byte) {
	b.mustActive()
	if len(end) > b.ReadableBytes() {
		panic(fmt.Errorf("netbuf: end slice larger than content (len: %d, readable: %d)", len(end), b.ReadableBytes()))
	}
	b.Retrieve(b.ReadableBytes() - len(end))
}

// RetrieveString copies out the first n readable bytes as an owned
// string and consumes them.
func (b *Buffer) RetrieveString(n int) string {
	b.mustActive()
	b.mustReadable(n)
	s := string(b.storage[b.readerIndex : b.readerIndex+n])
	b.Retrieve(n)
	return s
}

// RetrieveAllString copies out all content as an owned string and
// empties the buffer.
func (b *Buffer) RetrieveAllString() string {
	return b.RetrieveString(b.ReadableBytes())
}

// RetrieveBytes copies out the first n readable bytes as an owned slice
// and consumes them.
func (b *Buffer) RetrieveBytes(n int) []byte {
	b.mustActive()
	b.mustReadable(n)
	p := make([]byte, n)
	copy(p, b.storage[b.readerIndex:])
	b.Retrieve(n)
	return p
}

// Append copies p to the end of the content zone, growing or compacting
// storage as needed.
func (b *Buffer) Append(p []byte) {
	b.EnsureWritable(len(p))
	copy(b.storage[b.writerIndex:], p)
	b.HasWritten(len(p))
}

// AppendString appends s without an intermediate copy of the string.
func (b *Buffer) AppendString(s string) {
	b.Append(utils.StringToBytes(s))
}

// WritableSlice returns the raw writable span for fill-then-commit
// writers, for example a socket read. Commit the bytes actually
// written with HasWritten. The view is valid only until the next
// mutating call on the buffer.
func (b *Buffer) WritableSlice() []byte {
	b.mustActive()
	return b.storage[b.writerIndex:]
}

// HasWritten commits n bytes written into WritableSlice by advancing
// the writer cursor.
func (b *Buffer) HasWritten(n int) {
	b.mustActive()
	if n < 0 || n > b.WritableBytes() {
		panic(fmt.Errorf("netbuf: commit beyond writable bytes (len: %d, writable: %d)", n, b.WritableBytes()))
	}
	b.writerIndex += n
}

// Unwrite retracts the last n appended bytes, undoing a speculative
// write.
func (b *Buffer) Unwrite(n int) {
	b.mustActive()
	if n < 0 || n > b.ReadableBytes() {
		panic(fmt.Errorf("netbuf: unwrite beyond readable bytes (len: %d, readable: %d)", n, b.ReadableBytes()))
	}
	b.writerIndex -= n
}

// Allocate claims the next n writable bytes and advances the writer
// cursor past them, for callers that fill the span afterwards. The
// returned slice is valid only until the next mutating call on the
// buffer.
func (b *Buffer) Allocate(n int) []byte {
	b.EnsureWritable(n)
	s := b.storage[b.writerIndex : b.writerIndex+n]
	b.writerIndex += n
	return s
}

// Prepend copies p into the reserved region immediately in front of the
// content. The reserve is a hard limit; it is never grown.
func (b *Buffer) Prepend(p []byte) {
	b.mustActive()
	if len(p) > b.PrependableBytes() {
		panic(fmt.Errorf("netbuf: prepend beyond reserved bytes (len: %d, prependable: %d)", len(p), b.PrependableBytes()))
	}
	b.readerIndex -= len(p)
	copy(b.storage[b.readerIndex:], p)
}

// EnsureWritable guarantees at least n writable bytes, growing or
// compacting storage on shortfall.
func (b *Buffer) EnsureWritable(n int) {
	b.mustActive()
	if n < 0 {
		panic("netbuf: negative size")
	}
	if b.WritableBytes() < n {
		b.makeSpace(n)
	}
}

// makeSpace makes room for n more bytes. If the slack recoverable from
// consumed content cannot cover n while keeping the prepend reserve,
// storage is reallocated; otherwise the content is slid down to the
// front of the content zone, reclaiming the slack without allocating.
func (b *Buffer) makeSpace(n int) {
	if b.WritableBytes()+b.PrependableBytes() < n+b.prependSize {
		b.grow(b.writerIndex + n)
		return
	}
	readable := b.ReadableBytes()
	copy(b.storage[b.prependSize:], b.storage[b.readerIndex:b.writerIndex])
	b.readerIndex = b.prependSize
	b.writerIndex = b.readerIndex + readable
}

// grow reallocates storage to hold at least minCap bytes, swapping the
// old storage through the byteslice pool.
func (b *Buffer) grow(minCap int) {
	newCap := b.calculateGrowth(minCap)
	if b.maxCapacity > 0 && newCap > b.maxCapacity {
		if minCap > b.maxCapacity {
			panic(fmt.Errorf("netbuf: max capacity exceeded (limit: %d, need: %d)", b.maxCapacity, minCap))
		}
		newCap = b.maxCapacity
	}
	b.storage = byteslice.Grow(b.storage[:b.writerIndex], newCap)
}

// calculateGrowth determines the new capacity based on growth strategy.
func (b *Buffer) calculateGrowth(minCap int) int {
	oldCap := len(b.storage)

	// Growth strategy: double for small buffers, 1.25x for large buffers
	doubleCap := oldCap * 2
	if minCap <= doubleCap {
		if oldCap < growThreshold {
			return doubleCap
		}
		newCap := oldCap
		for newCap > 0 && newCap < minCap {
			newCap += newCap / 4
		}
		if newCap > 0 {
			return newCap
		}
	}
	return utils.CeilToPowerOfTwo(minCap)
}

// Shrink replaces storage with a snug fit: the prepend reserve, the
// current content and reserve writable bytes. Overcommitted capacity
// goes back to the pool.
func (b *Buffer) Shrink(reserve int) {
	b.mustActive()
	if reserve < 0 {
		panic("netbuf: negative size")
	}
	other := newBuffer(b.prependSize, b.ReadableBytes()+reserve, b.maxCapacity)
	other.Append(b.Peek())
	b.Swap(other)
	other.Release()
}

// Swap exchanges storage, cursors and configuration with other in
// constant time.
func (b *Buffer) Swap(other *Buffer) {
	b.mustActive()
	other.mustActive()
	*b, *other = *other, *b
}

// Release returns the storage to the byteslice pool. Any subsequent
// operation on the buffer panics. Release is idempotent.
func (b *Buffer) Release() {
	if b.storage == nil {
		return
	}
	byteslice.Put(b.storage)
	b.storage = nil
	b.readerIndex = 0
	b.writerIndex = 0
}

func (b *Buffer) mustActive() {
	if b.storage == nil {
		panic("netbuf: use of released buffer")
	}
}

func (b *Buffer) mustReadable(n int) {
	if n < 0 {
		panic("netbuf: negative size")
	}
	if n > b.ReadableBytes() {
		panic(fmt.Errorf("netbuf: not enough readable bytes (need: %d, readable: %d)", n, b.ReadableBytes()))
	}
}
