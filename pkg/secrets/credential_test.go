package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredential_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Credential)
		wantErr error
	}{
		{"Default", func(*Credential) {}, nil},
		{"Eight digits", func(c *Credential) { c.Digits = 8 }, nil},
		{"Seven digits", func(c *Credential) { c.Digits = 7 }, ErrInvalidDigits},
		{"Empty name", func(c *Credential) { c.ID = "" }, ErrEmptyCredentialID},
		{"Name too long", func(c *Credential) { c.ID = strings.Repeat("X", MaxCredentialIDLength+1) }, ErrCredentialIDTooLong},
		{"Unknown algorithm", func(c *Credential) { c.Algorithm = 0x07 }, ErrUnknownAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCredential()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCredential_Key(t *testing.T) {
	c := DefaultCredential()
	c.Algorithm = SHA256
	c.Digits = 8

	var key [2 + MaxSecretSize]byte
	n := c.putKey(key[:], []byte{0xAA, 0xBB})

	assert.Equal(t, []byte{0x32, 0x08, 0xAA, 0xBB}, key[:n])
}

func TestCredential_Properties(t *testing.T) {
	c := DefaultCredential()
	assert.Equal(t, byte(0x00), c.properties())

	c.TouchRequired = true
	assert.Equal(t, byte(0x02), c.properties())
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm(" SHA256 ")
	require.NoError(t, err)
	assert.Equal(t, SHA256, a)

	_, err = ParseAlgorithm("md5")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
