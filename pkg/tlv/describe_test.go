package tlv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/moov-io/bertlv"
)

type mockSelectFields struct {
	Version    []byte `tlv:"79"`
	PINCounter []byte `tlv:"82" fmt:"int"`
	Credential []byte `tlv:"71" fmt:"ascii"`
	RawData    []byte // No tag
	EmptyField []byte `tlv:"8F"`
	Unknown    []bertlv.TLV
}

func TestWriteStructFields(t *testing.T) {
	mock := mockSelectFields{
		Version:    []byte{0x04, 0x0A},
		PINCounter: []byte{0x08},
		Credential: []byte{'H', 'O', 'T', 'P', 0x00},
		RawData:    []byte{0xCA, 0xFE},
		Unknown: []bertlv.TLV{
			{Tag: "74", Value: []byte{0x12, 0x34}},
		},
	}

	tests := []struct {
		name          string
		prefix        string
		input         interface{}
		expectedLines []string
	}{
		{
			name:   "Struct Pointer Input",
			prefix: "Select",
			input:  &mock,
			expectedLines: []string{
				"    - Select.Version (79): 040A",
				"    - Select.PINCounter (82): 08 (Dec: 8)",
				`    - Select.Credential (71): 484F545000 ("HOTP.")`,
				"    - Select.RawData: CAFE",
				"    - Select.Unknown Tag 74: 1234",
			},
		},
		{
			name:   "Struct Value Input",
			prefix: "Val",
			input:  mock,
			expectedLines: []string{
				"    - Val.Version (79): 040A",
				"    - Val.PINCounter (82): 08 (Dec: 8)",
				`    - Val.Credential (71): 484F545000 ("HOTP.")`,
				"    - Val.RawData: CAFE",
				"    - Val.Unknown Tag 74: 1234",
			},
		},
		{
			name:          "Nil Pointer",
			prefix:        "Nil",
			input:         (*mockSelectFields)(nil),
			expectedLines: []string{""},
		},
		{
			name:          "Not a struct",
			prefix:        "Int",
			input:         42,
			expectedLines: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			WriteStructFields(&sb, tt.prefix, tt.input)
			actualLines := strings.Split(sb.String(), "\n")

			if diff := cmp.Diff(tt.expectedLines, actualLines); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteStructFields_AppendsAfterContent(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("header")
	WriteStructFields(&sb, "S", &mockSelectFields{Version: []byte{0x01}})

	want := "header\n    - S.Version (79): 01"
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMakeSafeASCII(t *testing.T) {
	input := []byte{0x41, 0x42, 0x00, 0x1F, 0x7F, 0x43} // AB, null, US, DEL, C
	want := "AB...C"

	if got := MakeSafeASCII(input); got != want {
		t.Errorf("MakeSafeASCII() = %q, want %q", got, want)
	}
}
