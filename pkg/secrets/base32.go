package secrets

import (
	"encoding/base32"
	"fmt"
	"strings"
)

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// DecodeBase32 decodes an RFC 4648 base32 secret as issued by OTP services.
// Case, padding, spaces and dashes are ignored.
func DecodeBase32(text string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t', '\n', '\r', '=':
			return -1
		}
		return r
	}, strings.ToUpper(text))

	if clean == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidBase32)
	}

	out, err := secretEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase32, err)
	}
	return out, nil
}
