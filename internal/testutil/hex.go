// Package testutil holds helpers shared by the test suites.
package testutil

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex decodes the concatenation of parts as hexadecimal.
// Whitespace and colons are separators only, so APDUs can be written
// grouped by field: Hex("00 A4 04 00", "07", "A0:00:00:05:27:21:01").
// Malformed input panics; it is meant for fixed test vectors.
func Hex(parts ...string) []byte {
	var sb strings.Builder
	for _, p := range parts {
		for _, field := range strings.FieldsFunc(p, isSeparator) {
			sb.WriteString(field)
		}
	}

	data, err := hex.DecodeString(sb.String())
	if err != nil {
		panic(fmt.Sprintf("testutil: bad hex vector %q: %v", strings.Join(parts, " "), err))
	}
	return data
}

func isSeparator(r rune) bool {
	return r == ':' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
