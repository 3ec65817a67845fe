package iso7816

import (
	"strings"
	"testing"
)

func TestInstruction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ins     Instruction
		wantErr bool
	}{
		{"SELECT (A4)", INS_SELECT, false},
		{"GET RESPONSE (C0)", INS_GET_RESPONSE, false},
		{"Proprietary Put (01)", 0x01, false},
		{"Proprietary VerifyPIN (B2)", 0xB2, false},
		{"Invalid INS 6X", 0x6A, true},
		{"Invalid INS 9X", 0x90, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ins.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInstruction_String(t *testing.T) {
	if got := INS_SELECT.String(); !strings.Contains(got, "SELECT") {
		t.Errorf("String() = %q, want SELECT", got)
	}
	if got := Instruction(0xB1).String(); got != "INS: 0xB1" {
		t.Errorf("String() = %q, want INS: 0xB1", got)
	}
}
