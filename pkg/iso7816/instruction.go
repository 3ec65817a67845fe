package iso7816

import (
	"fmt"

	"github.com/gregLibert/hotp-verification/pkg/bits"
)

// Instruction Byte (INS) Logic according to ISO/IEC 7816-4.
//
// INS values where the upper nibble is '6' or '9' (0x6X or 0x9X) are invalid.
// These values are reserved for Status Words (SW1) or transport layer control
// procedures (ISO/IEC 7816-3).
//
// Applications are free to define proprietary instructions outside of those
// ranges; only the interindustry ones the client itself issues are named here.

// Instruction is the INS byte of a command.
type Instruction byte

const (
	INS_SELECT       Instruction = 0xA4
	INS_GET_RESPONSE Instruction = 0xC0
)

// Validate rejects '6X' and '9X' values as they are invalid according to ISO 7816-3.
func (i Instruction) Validate() error {
	highNibble := bits.GetRange(byte(i), 8, 5)
	if highNibble == 0x6 || highNibble == 0x9 {
		return fmt.Errorf("invalid INS 0x%02X: 6X and 9X are reserved", byte(i))
	}
	return nil
}

func (i Instruction) String() string {
	switch i {
	case INS_SELECT:
		return "INS: 0xA4 (SELECT)"
	case INS_GET_RESPONSE:
		return "INS: 0xC0 (GET RESPONSE)"
	default:
		return fmt.Sprintf("INS: 0x%02X", byte(i))
	}
}
