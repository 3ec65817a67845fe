package secrets

import (
	"fmt"

	"github.com/gregLibert/hotp-verification/pkg/iso7816"
	"github.com/gregLibert/hotp-verification/pkg/tlv"
)

// Command is one secrets-app instruction with its TLV body.
type Command struct {
	Instruction iso7816.Instruction
	TLVs        []tlv.TLV
}

// NewCommand records an instruction and the TLVs to send with it.
func NewCommand(ins iso7816.Instruction, tlvs ...tlv.TLV) Command {
	return Command{Instruction: ins, TLVs: tlvs}
}

// Encode serializes the body into dst and frames it as a C-APDU.
// The APDU data field aliases dst, which must stay untouched until sent.
func (c Command) Encode(dst []byte) (*iso7816.CommandAPDU, error) {
	n, err := tlv.Encode(dst, c.TLVs...)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", instructionName(c.Instruction), err)
	}

	var data []byte
	if n > 0 {
		data = dst[:n]
	}
	return iso7816.NewCommandAPDU(iso7816.ClassInterindustry, c.Instruction, 0x00, 0x00, data, 0), nil
}
