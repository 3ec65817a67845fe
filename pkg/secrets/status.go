package secrets

import "github.com/gregLibert/hotp-verification/pkg/iso7816"

// Result is the outcome of one operation, as classified from the status word.
type Result int

const (
	// ResultNone accompanies a non-nil error: no status word was classified.
	ResultNone Result = iota
	ResultSuccess
	ResultWrongPIN
	ResultSlotNotConfigured
	ResultNoPINAttempts
	ResultSecurityNotSatisfied
	ResultCommError
	ResultValidationFailed
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultSuccess:
		return "success"
	case ResultWrongPIN:
		return "wrong PIN"
	case ResultSlotNotConfigured:
		return "slot not configured"
	case ResultNoPINAttempts:
		return "no PIN attempts"
	case ResultSecurityNotSatisfied:
		return "security status not satisfied"
	case ResultCommError:
		return "communication error"
	case ResultValidationFailed:
		return "validation failed"
	default:
		return "unknown result"
	}
}

// Err returns nil for ResultSuccess and the matching sentinel error otherwise.
func (r Result) Err() error {
	switch r {
	case ResultSuccess:
		return nil
	case ResultWrongPIN:
		return ErrWrongPIN
	case ResultSlotNotConfigured:
		return ErrSlotNotConfigured
	case ResultNoPINAttempts:
		return ErrNoPINAttempts
	case ResultSecurityNotSatisfied:
		return ErrSecurityStatusNotSatisfied
	case ResultCommError:
		return ErrCommunication
	default:
		return ErrValidationFailed
	}
}

// STATUS WORD MAPPING:
// The secrets application reuses ISO status words with a meaning that depends
// on the instruction. 6A82 answers a Put when the PIN is exhausted or unset,
// but a VerifyCode when the slot is missing or PIN-protected.
// The table is therefore keyed by both. 9000 is success for every instruction
// and anything not listed is a generic validation failure.

type statusKey struct {
	ins iso7816.Instruction
	sw  iso7816.StatusWord
}

var statusTable = map[statusKey]Result{
	{InsVerifyPIN, iso7816.SW_WARN_NV_CHANGED_NO_INFO}: ResultWrongPIN,
	{InsPut, iso7816.SW_ERR_FILE_NOT_FOUND}:            ResultNoPINAttempts,
	{InsPut, iso7816.SW_ERR_SECURITY_STATUS_NOT_SAT}:   ResultSecurityNotSatisfied,
	{InsVerifyCode, iso7816.SW_ERR_FILE_NOT_FOUND}:     ResultSlotNotConfigured,
}

// Interpret maps the status word sw returned for instruction ins to a Result.
func Interpret(ins iso7816.Instruction, sw iso7816.StatusWord) Result {
	if sw == iso7816.SW_NO_ERROR {
		return ResultSuccess
	}
	if r, ok := statusTable[statusKey{ins: ins, sw: sw}]; ok {
		return r
	}
	return ResultValidationFailed
}
