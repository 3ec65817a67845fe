package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  []byte
	}{
		{"Single part", []string{"00A4"}, []byte{0x00, 0xA4}},
		{"Fields across parts", []string{"00 A4", " 04 00 "}, []byte{0x00, 0xA4, 0x04, 0x00}},
		{"Colons and line breaks", []string{"A0:00:00\r\n05:27\t21 01"}, []byte{0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01}},
		{"Byte split by a separator", []string{"9", "0 00"}, []byte{0x90, 0x00}},
		{"Empty", nil, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hex(tt.parts...))
		})
	}
}

func TestHex_Malformed(t *testing.T) {
	for _, bad := range []string{"ZZ", "123", "90-00"} {
		assert.Panics(t, func() { Hex(bad) }, bad)
	}
}
