package secrets

import (
	"fmt"

	"github.com/gregLibert/hotp-verification/pkg/iso7816"
	"github.com/gregLibert/hotp-verification/pkg/tlv"
)

// AID of the secrets application.
var AID = []byte{0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01}

// Instructions understood by the secrets application.
const (
	InsPut           iso7816.Instruction = 0x01
	InsSendRemaining iso7816.Instruction = 0xA5
	InsVerifyCode    iso7816.Instruction = 0xB1
	InsVerifyPIN     iso7816.Instruction = 0xB2
	InsSetPIN        iso7816.Instruction = 0xB4
	InsSelect                            = iso7816.INS_SELECT
)

func instructionName(ins iso7816.Instruction) string {
	switch ins {
	case InsPut:
		return "Put"
	case InsSendRemaining:
		return "SendRemaining"
	case InsVerifyCode:
		return "VerifyCode"
	case InsVerifyPIN:
		return "VerifyPIN"
	case InsSetPIN:
		return "SetPIN"
	case InsSelect:
		return "Select"
	default:
		return fmt.Sprintf("INS_%02X", byte(ins))
	}
}

// Tags of the secrets application.
const (
	TagCredentialID   tlv.Tag = 0x71
	TagKey            tlv.Tag = 0x73
	TagResponse       tlv.Tag = 0x75
	TagProperties     tlv.Tag = 0x78
	TagVersion        tlv.Tag = 0x79
	TagInitialCounter tlv.Tag = 0x7A
	TagPassword       tlv.Tag = 0x80
	TagPINCounter     tlv.Tag = 0x82
	TagSerialNumber   tlv.Tag = 0x8F
)

const (
	// DefaultCredentialID names the slot holding the verification secret.
	DefaultCredentialID = "HOTP_VERIFICATION"

	// MaxCredentialIDLength keeps the name in a short-form length field.
	MaxCredentialIDLength = 127

	// MaxSecretSize is the largest decoded HOTP secret the slot accepts.
	MaxSecretSize = 40

	// MaxPINLength bounds the PIN; longer input is truncated.
	MaxPINLength = 30

	// MaxCounter is the first counter value the device refuses.
	MaxCounter = 0xFFFFFFFF

	// OutputBufferSize is the capacity of a command body: a short APDU.
	OutputBufferSize = iso7816.MaxShortLc

	// InputBufferSize is the capacity of a reassembled response body.
	InputBufferSize = 1024
)

// propertyTouchBit is the Properties bit requiring a button press.
const propertyTouchBit = 2
