package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregLibert/hotp-verification/internal/testutil"
	"github.com/gregLibert/hotp-verification/pkg/tlv"
)

func TestCommand_Encode(t *testing.T) {
	var buf [OutputBufferSize]byte

	cmd, err := NewCommand(InsVerifyPIN, tlv.New(TagPassword, tlv.Text("1234"))).Encode(buf[:])
	require.NoError(t, err)

	raw, err := cmd.Bytes()
	require.NoError(t, err)
	assert.Equal(t, testutil.Hex("00 B2 00 00 06", "80 04 31323334"), raw)

	// The data field is the session buffer itself.
	assert.Same(t, &buf[0], &cmd.Data[0])
}

func TestCommand_EncodeWithoutBody(t *testing.T) {
	var buf [OutputBufferSize]byte

	cmd, err := NewCommand(InsSetPIN).Encode(buf[:])
	require.NoError(t, err)
	assert.Nil(t, cmd.Data)

	raw, err := cmd.Bytes()
	require.NoError(t, err)
	assert.Equal(t, testutil.Hex("00 B4 00 00"), raw)
}

func TestCommand_EncodeOverCapacity(t *testing.T) {
	var buf [8]byte

	_, err := NewCommand(InsPut, tlv.New(TagKey, tlv.Bytes(make([]byte, 16)))).Encode(buf[:])
	assert.ErrorIs(t, err, tlv.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "Put")
}
