package secrets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gregLibert/hotp-verification/internal/testutil"
)

func TestSession_QueryStatus(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     Result
		check    func(t *testing.T, st *Status)
	}{
		{
			name:     "Complete status",
			response: "79 03 04 0A 01 82 01 08 8F 04 01020304 71 02 AABB 90 00",
			want:     ResultSuccess,
			check: func(t *testing.T, st *Status) {
				assert.Equal(t, Version(0x040A), st.Firmware)
				assert.True(t, st.HasPINAttempts)
				assert.Equal(t, uint8(8), st.PINAttempts)
				assert.True(t, st.HasSerialNumber)
				assert.Equal(t, uint32(0x01020304), st.SerialNumber)
				require.Len(t, st.Fields.Unknown, 1)
				assert.Equal(t, "71", st.Fields.Unknown[0].Tag)
				assert.Equal(t, []byte{0xAA, 0xBB}, st.Fields.Unknown[0].Value)
			},
		},
		{
			name:     "PIN not set",
			response: "79 02 04 0A 8F 04 01020304 90 00",
			want:     ResultNoPINAttempts,
			check: func(t *testing.T, st *Status) {
				assert.Equal(t, Version(0x040A), st.Firmware)
				assert.False(t, st.HasPINAttempts)
				assert.True(t, st.HasSerialNumber)
			},
		},
		{
			name:     "Serial number hidden",
			response: "79 02 04 0A 82 01 00 90 00",
			want:     ResultSuccess,
			check: func(t *testing.T, st *Status) {
				assert.False(t, st.HasSerialNumber)
				assert.True(t, st.HasPINAttempts)
				assert.Zero(t, st.PINAttempts)
			},
		},
		{
			name:     "Version missing",
			response: "82 01 08 8F 04 01020304 90 00",
			want:     ResultCommError,
			check: func(t *testing.T, st *Status) {
				// The fields that were present are still reported.
				assert.Equal(t, uint8(8), st.PINAttempts)
				assert.Equal(t, uint32(0x01020304), st.SerialNumber)
			},
		},
		{
			name:     "Version too short",
			response: "79 01 04 82 01 08 90 00",
			want:     ResultCommError,
		},
		{
			name:     "Serial number too short",
			response: "79 02 04 0A 82 01 08 8F 02 0102 90 00",
			want:     ResultSuccess,
			check: func(t *testing.T, st *Status) {
				assert.False(t, st.HasSerialNumber)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, card := newTestSession(t)
			card.On("Transmit", selectAPDU).Return(testutil.Hex(tt.response), nil).Once()

			st, res, err := s.QueryStatus()
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
			require.NotNil(t, st)
			if tt.check != nil {
				tt.check(t, st)
			}
			card.AssertExpectations(t)
		})
	}
}

func TestSession_QueryStatus_Rejected(t *testing.T) {
	for _, resp := range []string{"90 00", "6A 82", "79 02 04 0A 6A 82"} {
		t.Run(resp, func(t *testing.T) {
			s, card := newTestSession(t)
			card.On("Transmit", mock.Anything).Return(testutil.Hex(resp), nil).Once()

			st, res, err := s.QueryStatus()
			require.NoError(t, err)
			assert.Nil(t, st)
			assert.Equal(t, ResultCommError, res)
		})
	}
}

func TestStatus_Describe(t *testing.T) {
	st, res := parseStatus(testutil.Hex("79 02 04 0A 82 01 03 8F 04 DEADBEEF 7F 01 00"))
	require.Equal(t, ResultSuccess, res)

	out := st.Describe()
	assert.Contains(t, out, "=== SECRETS APPLICATION STATUS ===")
	assert.Contains(t, out, "+ Firmware:      4.10")
	assert.Contains(t, out, "+ Serial number: 0xDEADBEEF")
	assert.Contains(t, out, "+ PIN attempts:  3")
	assert.Contains(t, out, "- Select.Version (79): 040A")
	assert.Contains(t, out, "- Select.PINCounter (82): 03 (Dec: 3)")
	assert.Contains(t, out, "- Select.Unknown Tag 7F: 00")
}

func TestStatus_DescribeMissingFields(t *testing.T) {
	st, res := parseStatus(testutil.Hex("79 02 04 0A"))
	require.Equal(t, ResultNoPINAttempts, res)

	out := st.Describe()
	assert.Contains(t, out, "+ Serial number: unavailable")
	assert.Contains(t, out, "+ PIN attempts:  PIN not set")
}

func TestStatus_JSON(t *testing.T) {
	st, _ := parseStatus(testutil.Hex("79 02 04 0A 82 01 03 8F 04 00000010"))

	out, err := json.Marshal(st)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pin_attempts": 3,
		"pin_set": true,
		"serial_number": 16,
		"serial_available": true,
		"firmware_version": "4.10"
	}`, string(out))
}
