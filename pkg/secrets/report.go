package secrets

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/moov-io/bertlv"

	"github.com/gregLibert/hotp-verification/pkg/tlv"
)

// Version is the firmware version reported by the application, major in the high byte.
type Version uint16

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", byte(v>>8), byte(v))
}

// MarshalText renders the version as "major.minor".
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// StatusFields holds copies of the raw fields of a SELECT response.
type StatusFields struct {
	Version      []byte `tlv:"79"`
	PINCounter   []byte `tlv:"82" fmt:"int"`
	SerialNumber []byte `tlv:"8F" fmt:"int"`

	Unknown []bertlv.TLV `tlv:",unknown"`
}

// Status is the device state read by QueryStatus.
// PINAttempts and SerialNumber are only meaningful when their Has flag is set.
type Status struct {
	PINAttempts     uint8   `json:"pin_attempts"`
	HasPINAttempts  bool    `json:"pin_set"`
	SerialNumber    uint32  `json:"serial_number"`
	HasSerialNumber bool    `json:"serial_available"`
	Firmware        Version `json:"firmware_version"`

	Fields StatusFields `json:"-"`
}

// parseStatus extracts the status fields from a SELECT response.
func parseStatus(data []byte) (*Status, Result) {
	st := &Status{}

	// An absent PIN counter means the PIN is not set.
	if v, ok := lookup(data, TagPINCounter, 1); ok {
		st.Fields.PINCounter = v
		st.PINAttempts = v[0]
		st.HasPINAttempts = true
	}

	// Hidden or unsupported on some devices.
	if v, ok := lookup(data, TagSerialNumber, 4); ok {
		st.Fields.SerialNumber = v
		st.SerialNumber = binary.BigEndian.Uint32(v)
		st.HasSerialNumber = true
	}

	st.Fields.Unknown = unknownFields(data)

	v, ok := lookup(data, TagVersion, 2)
	if !ok {
		return st, ResultCommError
	}
	st.Fields.Version = v
	st.Firmware = Version(binary.BigEndian.Uint16(v))

	if !st.HasPINAttempts {
		return st, ResultNoPINAttempts
	}
	return st, ResultSuccess
}

// lookup returns a copy of the first tag field holding at least minLen bytes.
func lookup(data []byte, tag tlv.Tag, minLen int) ([]byte, bool) {
	view, err := tlv.Find(data, tag)
	if err != nil || view.Length < minLen {
		return nil, false
	}
	return append([]byte(nil), view.Bytes(data)...), true
}

func unknownFields(data []byte) []bertlv.TLV {
	// Split stops at the first malformed field; what was read is still useful.
	all, _ := tlv.Split(data)

	var out []bertlv.TLV
	for _, f := range all {
		switch f.Tag {
		case TagVersion.String(), TagPINCounter.String(), TagSerialNumber.String():
			continue
		}
		out = append(out, f)
	}
	return out
}

// Describe generates a human-readable report of the status.
func (s *Status) Describe() string {
	var sb strings.Builder

	sb.WriteString("=== SECRETS APPLICATION STATUS ===\n")
	sb.WriteString(fmt.Sprintf("    + Firmware:      %s\n", s.Firmware))

	if s.HasSerialNumber {
		sb.WriteString(fmt.Sprintf("    + Serial number: 0x%08X\n", s.SerialNumber))
	} else {
		sb.WriteString("    + Serial number: unavailable\n")
	}

	if s.HasPINAttempts {
		sb.WriteString(fmt.Sprintf("    + PIN attempts:  %d\n", s.PINAttempts))
	} else {
		sb.WriteString("    + PIN attempts:  PIN not set\n")
	}

	sb.WriteString("[=] RAW FIELDS:")
	tlv.WriteStructFields(&sb, "Select", &s.Fields)

	return sb.String()
}
