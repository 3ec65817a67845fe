// Package tlv implements the tag-length-value codec spoken by token
// applications: single-byte tags, BER definite lengths, and fixed-capacity
// destination buffers.
package tlv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("tlv: encoded size exceeds buffer capacity")
	ErrValueTooLong     = errors.New("tlv: value longer than 65535 bytes")
	ErrTagNotFound      = errors.New("tlv: tag not found")
	ErrTruncated        = errors.New("tlv: field runs past end of buffer")
	ErrMalformedLength  = errors.New("tlv: malformed length field")
)

// maxValueLength is the largest length the 0x82 long form can carry.
const maxValueLength = 0xFFFF

// Tag identifies a field. Token applications use single-byte tags.
type Tag byte

func (t Tag) String() string {
	return fmt.Sprintf("%02X", byte(t))
}

// Value is the payload of a TLV. It is one of Text, Bytes, Integer or Raw.
type Value interface {
	size() int
	put(dst []byte) int
}

// Text is a string value, sent as its UTF-8 bytes without terminator.
type Text string

// Bytes is an opaque byte sequence.
type Bytes []byte

// Integer is a 32-bit unsigned value, sent as 4 bytes big-endian.
type Integer uint32

// Raw is pre-encoded content written verbatim, with neither tag nor length.
// Some fields (e.g. a flags byte following its tag) have no length prefix.
type Raw []byte

func (v Text) size() int          { return len(v) }
func (v Text) put(dst []byte) int { return copy(dst, v) }

func (v Bytes) size() int          { return len(v) }
func (v Bytes) put(dst []byte) int { return copy(dst, v) }

func (v Integer) size() int { return 4 }
func (v Integer) put(dst []byte) int {
	binary.BigEndian.PutUint32(dst, uint32(v))
	return 4
}

func (v Raw) size() int          { return len(v) }
func (v Raw) put(dst []byte) int { return copy(dst, v) }

// TLV is one tagged value.
type TLV struct {
	Tag   Tag
	Value Value
}

// New is shorthand for building a TLV.
func New(tag Tag, v Value) TLV {
	return TLV{Tag: tag, Value: v}
}

// encodedSize returns the number of bytes t occupies on the wire.
func (t TLV) encodedSize() (int, error) {
	n := t.Value.size()
	if _, ok := t.Value.(Raw); ok {
		return n, nil
	}
	if n > maxValueLength {
		return 0, fmt.Errorf("tag %s: %w", t.Tag, ErrValueTooLong)
	}
	return 1 + lengthSize(n) + n, nil
}

// lengthSize returns the size of the BER definite length field for n.
func lengthSize(n int) int {
	switch {
	case n < 0x80:
		return 1
	case n <= 0xFF:
		return 2
	default:
		return 3
	}
}

func putLength(dst []byte, n int) int {
	switch {
	case n < 0x80:
		dst[0] = byte(n)
		return 1
	case n <= 0xFF:
		dst[0] = 0x81
		dst[1] = byte(n)
		return 2
	default:
		dst[0] = 0x82
		binary.BigEndian.PutUint16(dst[1:], uint16(n))
		return 3
	}
}

// Size returns the number of bytes Encode would write for tlvs.
func Size(tlvs ...TLV) (int, error) {
	total := 0
	for _, t := range tlvs {
		n, err := t.encodedSize()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// Encode writes tlvs into dst in order and returns the number of bytes written.
// The total size is checked first: when it exceeds len(dst), dst is left
// untouched and ErrCapacityExceeded is returned.
func Encode(dst []byte, tlvs ...TLV) (int, error) {
	total, err := Size(tlvs...)
	if err != nil {
		return 0, err
	}
	if total > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCapacityExceeded, total, len(dst))
	}

	off := 0
	for _, t := range tlvs {
		if _, ok := t.Value.(Raw); !ok {
			dst[off] = byte(t.Tag)
			off++
			off += putLength(dst[off:], t.Value.size())
		}
		off += t.Value.put(dst[off:])
	}
	return off, nil
}
