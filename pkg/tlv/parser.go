package tlv

import (
	"encoding/binary"
	"fmt"

	"github.com/moov-io/bertlv"
)

// View locates a value inside a received buffer without copying it.
type View struct {
	Tag    Tag
	Offset int
	Length int
}

// Bytes returns the viewed value as a sub-slice of data.
func (v View) Bytes(data []byte) []byte {
	return data[v.Offset : v.Offset+v.Length]
}

// field reads the header at data[off:] and returns the view on its value.
func field(data []byte, off int) (View, error) {
	tag := Tag(data[off])
	off++
	if off >= len(data) {
		return View{}, fmt.Errorf("tag %s at end of buffer: %w", tag, ErrTruncated)
	}

	var length int
	switch l := data[off]; {
	case l < 0x80:
		length = int(l)
		off++
	case l == 0x81:
		if off+2 > len(data) {
			return View{}, fmt.Errorf("tag %s: %w", tag, ErrTruncated)
		}
		length = int(data[off+1])
		off += 2
	case l == 0x82:
		if off+3 > len(data) {
			return View{}, fmt.Errorf("tag %s: %w", tag, ErrTruncated)
		}
		length = int(binary.BigEndian.Uint16(data[off+1:]))
		off += 3
	default:
		return View{}, fmt.Errorf("tag %s: length byte %02X: %w", tag, l, ErrMalformedLength)
	}

	if off+length > len(data) {
		return View{}, fmt.Errorf("tag %s: %d bytes announced, %d left: %w", tag, length, len(data)-off, ErrTruncated)
	}
	return View{Tag: tag, Offset: off, Length: length}, nil
}

// Find scans data for the first field tagged tag.
//
// Tags are assumed unique within one response: a later duplicate is never
// looked at. A missing tag yields ErrTagNotFound, which callers can tell apart
// from a present field of length zero.
func Find(data []byte, tag Tag) (View, error) {
	for off := 0; off < len(data); {
		v, err := field(data, off)
		if err != nil {
			return View{}, err
		}
		if v.Tag == tag {
			return v, nil
		}
		off = v.Offset + v.Length
	}
	return View{}, fmt.Errorf("tag %s: %w", tag, ErrTagNotFound)
}

// Split walks the whole of data and returns a copy of every field, in order.
// It is meant for diagnostic reports, not for lookups.
//
// The fields are returned as flat bertlv.TLV values: token applications reuse
// tag numbers that BER reserves for constructed types, so the values are
// never parsed as nested templates.
func Split(data []byte) ([]bertlv.TLV, error) {
	var out []bertlv.TLV
	for off := 0; off < len(data); {
		v, err := field(data, off)
		if err != nil {
			return out, err
		}
		out = append(out, bertlv.TLV{
			Tag:   v.Tag.String(),
			Value: append([]byte(nil), v.Bytes(data)...),
		})
		off = v.Offset + v.Length
	}
	return out, nil
}
