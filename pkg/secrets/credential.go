package secrets

import (
	"fmt"
	"strings"

	"github.com/gregLibert/hotp-verification/pkg/bits"
)

// Kind is the credential type, stored in the high nibble of the key header.
type Kind byte

const (
	KindHOTP Kind = 0x10
	KindTOTP Kind = 0x20
	// KindHOTPReverse is an HOTP credential the token verifies codes against.
	KindHOTPReverse Kind = 0x30
)

func (k Kind) String() string {
	switch k {
	case KindHOTP:
		return "HOTP"
	case KindTOTP:
		return "TOTP"
	case KindHOTPReverse:
		return "HOTP verification"
	default:
		return fmt.Sprintf("Kind(%02X)", byte(k))
	}
}

// Algorithm is the HMAC digest, stored in the low nibble of the key header.
type Algorithm byte

const (
	SHA1   Algorithm = 0x01
	SHA256 Algorithm = 0x02
	SHA512 Algorithm = 0x03
)

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return fmt.Sprintf("Algorithm(%02X)", byte(a))
	}
}

// ParseAlgorithm accepts "sha1", "sha256" or "sha512", in any case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "sha512":
		return SHA512, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Credential describes the slot that ProvisionSecret writes and VerifyCode checks.
// The token is the only storage; nothing here outlives the call.
type Credential struct {
	ID            string
	Kind          Kind
	Algorithm     Algorithm
	Digits        int
	TouchRequired bool
}

// DefaultCredential returns the 6-digit SHA1 verification slot.
func DefaultCredential() Credential {
	return Credential{
		ID:        DefaultCredentialID,
		Kind:      KindHOTPReverse,
		Algorithm: SHA1,
		Digits:    6,
	}
}

// Validate checks the fields against what the token accepts.
func (c Credential) Validate() error {
	if c.ID == "" {
		return ErrEmptyCredentialID
	}
	if len(c.ID) > MaxCredentialIDLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrCredentialIDTooLong, len(c.ID), MaxCredentialIDLength)
	}
	if c.Digits != 6 && c.Digits != 8 {
		return fmt.Errorf("%w: got %d", ErrInvalidDigits, c.Digits)
	}
	switch c.Algorithm {
	case SHA1, SHA256, SHA512:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, c.Algorithm)
	}
	return nil
}

// header returns the packed kind|algorithm byte.
func (c Credential) header() byte {
	return byte(c.Kind) | byte(c.Algorithm)
}

// properties returns the Properties bitmask.
func (c Credential) properties() byte {
	return bits.SetIf(0x00, propertyTouchBit, c.TouchRequired)
}

// putKey writes [kind|algorithm, digits, secret...] into dst and returns its length.
// dst must hold 2+len(secret) bytes.
func (c Credential) putKey(dst []byte, secret []byte) int {
	dst[0] = c.header()
	dst[1] = byte(c.Digits)
	return 2 + copy(dst[2:], secret)
}
