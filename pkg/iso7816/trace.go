package iso7816

// TRANSACTION:
// A Transaction is the atomic unit of communication defined in ISO 7816-3:
// one Command APDU sent by the host, followed by one Response APDU.
//
// TRACE:
// A Trace is the chronological sequence of Transactions of one logical exchange.
// A single intent may need several physical transactions:
// 1. "61 XX": the host must fetch the remaining bytes.
// 2. "6C XX": the host must re-send the command with Le = XX.
//
// IsSuccess() evaluates the final outcome and Data() reassembles the payload.

// Transaction represents a completed Command-Response pair.
type Transaction struct {
	Command  *CommandAPDU
	Response *ResponseAPDU
}

// IsSuccess checks if the transaction ended with a successful status.
// It returns false if the response is missing.
func (t *Transaction) IsSuccess() bool {
	if t.Response == nil {
		return false
	}
	return t.Response.Status.IsSuccess()
}

// Trace is a sequence of transactions (Command-Response pairs).
type Trace []Transaction

// Last returns the final transaction of the trace.
// Returns nil if the trace is empty.
func (t Trace) Last() *Transaction {
	if len(t) == 0 {
		return nil
	}
	return &t[len(t)-1]
}

// Status returns the status word of the final transaction, or 0 for an empty trace.
func (t Trace) Status() StatusWord {
	last := t.Last()
	if last == nil || last.Response == nil {
		return 0
	}
	return last.Response.Status
}

// IsSuccess checks if the FINAL transaction in the trace was successful.
func (t Trace) IsSuccess() bool {
	last := t.Last()
	if last == nil {
		return false
	}
	return last.IsSuccess()
}

// Data reassembles the response payload of the logical exchange.
// Chunks returned alongside 61XX are concatenated with the following ones;
// responses to a 6CXX (wrong length) carry nothing and are skipped.
func (t Trace) Data() []byte {
	var out []byte
	for _, tx := range t {
		if tx.Response == nil || tx.Response.Status.SW1() == 0x6C {
			continue
		}
		out = append(out, tx.Response.Data...)
	}
	return out
}
