package iso7816

// SELECT COMMAND LOGIC (ISO 7816-4):
// The SELECT command (INS 'A4') opens a file or an application.
//
// P1 (Selection Method): how the target is named. Token applications are
// selected by DF name, i.e. by their AID (P1 = 04).
//
// P2 (Selection Control): which occurrence and what to return. P2 = 00 asks for
// the first occurrence and the FCI, which applications use to return their
// own status TLVs.

// SelectionMethod defines how the file is targeted (P1).
type SelectionMethod byte

const (
	SelectByFileID SelectionMethod = 0x00
	SelectByDFName SelectionMethod = 0x04 // Select by AID
)

// SelectionControl defines what data to return (Bits 3-4 of P2).
type SelectionControl byte

const (
	ReturnFCI    SelectionControl = 0b0000_00_00
	ReturnNoData SelectionControl = 0b0000_11_00
)

// NewSelectCommand creates a SELECT command for the first occurrence of the target.
func NewSelectCommand(method SelectionMethod, ctrl SelectionControl, data []byte) *CommandAPDU {
	// T=0 Protocol Compatibility:
	// - Sending Data: Le is left out, since T=0 cannot carry Lc and Le together.
	//   The token answers '61 XX' and the Client fetches the bytes.
	// - No Data: MaxShortLe (256) can safely be requested.
	ne := 0
	if len(data) == 0 && ctrl != ReturnNoData {
		ne = MaxShortLe
	}

	return NewCommandAPDU(ClassInterindustry, INS_SELECT, byte(method), byte(ctrl), data, ne)
}

// SelectByAID creates a SELECT command for an application, by its AID.
func SelectByAID(aid []byte) *CommandAPDU {
	return NewSelectCommand(SelectByDFName, ReturnFCI, aid)
}
