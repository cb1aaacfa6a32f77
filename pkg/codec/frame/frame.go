// Package frame stages and parses length-prefixed frames on a netbuf
// Buffer: a 4-byte big-endian length header followed by the payload.
// Incomplete frames are an expected condition on a byte stream, so the
// decode side reports errors instead of panicking.
package frame

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-netbuf/pkg/datastructs/netbuf"
	"github.com/huynhanx03/go-netbuf/pkg/utils"
)

const (
	// HeaderSize is the length prefix width in bytes.
	HeaderSize = 4

	// DefaultMaxFrameSize bounds payload length when Codec.MaxFrameSize
	// is unset. Oversized lengths on the wire mean a corrupt or hostile
	// stream.
	DefaultMaxFrameSize = 64 * 1024
)

var (
	// ErrIncompleteFrame reports that the buffer does not yet hold a
	// whole frame; the caller should read more bytes and retry.
	ErrIncompleteFrame = errors.New("frame: incomplete frame")

	// ErrFrameTooLarge reports a length header above the configured
	// maximum.
	ErrFrameTooLarge = errors.New("frame: frame exceeds max size")

	// ErrInvalidLength reports a negative length header.
	ErrInvalidLength = errors.New("frame: negative length header")
)

// Codec encodes and decodes length-prefixed frames. The zero value is
// ready to use with DefaultMaxFrameSize.
type Codec struct {
	MaxFrameSize int
}

func (c Codec) maxFrameSize() int {
	if c.MaxFrameSize <= 0 {
		return DefaultMaxFrameSize
	}
	return c.MaxFrameSize
}

// Encode appends one frame (header plus payload) to dst. Frames stack,
// so dst can stage several messages before a flush.
func (c Codec) Encode(dst *netbuf.Buffer, payload []byte) error {
	if len(payload) > c.maxFrameSize() {
		return errors.Wrapf(ErrFrameTooLarge, "payload length %d exceeds limit %d", len(payload), c.maxFrameSize())
	}
	dst.AppendInt32(int32(len(payload)))
	dst.Append(payload)
	return nil
}

// PrependLength stamps a length header in front of everything readable
// in b. Use it when the payload was built directly in the buffer and
// its size was unknown up front; the header lands in the reserved
// prepend region, so the payload is not moved.
func PrependLength(b *netbuf.Buffer) {
	b.PrependInt32(int32(b.ReadableBytes()))
}

// Decode consumes one whole frame from src and returns an owned copy of
// its payload. It returns ErrIncompleteFrame without consuming anything
// when src does not yet hold the whole frame.
func (c Codec) Decode(src *netbuf.Buffer) ([]byte, error) {
	if src.ReadableBytes() < HeaderSize {
		return nil, ErrIncompleteFrame
	}
	length := src.PeekInt32()
	if length < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "length %d", length)
	}
	if int(length) > c.maxFrameSize() {
		return nil, errors.Wrapf(ErrFrameTooLarge, "length %d exceeds limit %d", length, c.maxFrameSize())
	}
	if src.ReadableBytes()-HeaderSize < int(length) {
		return nil, ErrIncompleteFrame
	}
	src.RetrieveInt32()
	return src.RetrieveBytes(int(length)), nil
}

// DecodeString is Decode with the payload returned as an owned string.
func (c Codec) DecodeString(src *netbuf.Buffer) (string, error) {
	payload, err := c.Decode(src)
	if err != nil {
		return "", err
	}
	return utils.BytesToString(payload), nil
}

// Iterate walks the complete frames currently staged in src without
// consuming them, calling fn with a borrowed view of each payload. It
// stops silently at the first incomplete frame and propagates fn's
// error, if any.
func (c Codec) Iterate(src *netbuf.Buffer, fn func(payload []byte) error) error {
	view := src.Peek()
	for off := 0; off+HeaderSize <= len(view); {
		length := int32(binary.BigEndian.Uint32(view[off:]))
		if length < 0 {
			return errors.Wrapf(ErrInvalidLength, "length %d at offset %d", length, off)
		}
		if int(length) > c.maxFrameSize() {
			return errors.Wrapf(ErrFrameTooLarge, "length %d at offset %d exceeds limit %d", length, off, c.maxFrameSize())
		}
		end := off + HeaderSize + int(length)
		if end > len(view) {
			return nil
		}
		if err := fn(view[off+HeaderSize : end]); err != nil {
			return err
		}
		off = end
	}
	return nil
}
