package secrets

import (
	"fmt"

	"github.com/gregLibert/hotp-verification/pkg/iso7816"
	"github.com/gregLibert/hotp-verification/pkg/tlv"
)

// When an operation returns a non-nil error its Result is ResultNone.

// SetPIN sets the administrator PIN. Only 9000 counts as success.
func (s *Session) SetPIN(pin string) (Result, error) {
	s.reset()

	ex, err := s.exchange(InsSetPIN, passwordTLV(pin))
	if err != nil {
		return ResultNone, err
	}
	return Interpret(InsSetPIN, ex.Status), nil
}

// Authenticate verifies the administrator PIN.
// It reports ResultWrongPIN when the PIN is wrong or the attempts are used up.
func (s *Session) Authenticate(pin string) (Result, error) {
	s.reset()

	ex, err := s.exchange(InsVerifyPIN, passwordTLV(pin))
	if err != nil {
		return ResultNone, err
	}
	return Interpret(InsVerifyPIN, ex.Status), nil
}

// ProvisionSecret writes the base32 secret and the initial counter into the slot.
// The secret length and the counter are checked before anything is sent.
func (s *Session) ProvisionSecret(secretBase32 string, counter uint64) (Result, error) {
	secret, err := decodeSecret(secretBase32, counter)
	if err != nil {
		return ResultNone, err
	}
	defer clear(secret)

	var key [2 + MaxSecretSize]byte
	defer clear(key[:])
	n := s.credential.putKey(key[:], secret)

	s.reset()

	ex, err := s.exchange(InsPut,
		tlv.New(TagCredentialID, tlv.Text(s.credential.ID)),
		tlv.New(TagKey, tlv.Bytes(key[:n])),
		tlv.New(TagProperties, tlv.Raw{byte(TagProperties), s.credential.properties()}),
		tlv.New(TagInitialCounter, tlv.Integer(uint32(counter))),
	)
	clear(s.out[:])
	if err != nil {
		return ResultNone, err
	}
	return Interpret(InsPut, ex.Status), nil
}

// ValidateSecret runs the argument checks of ProvisionSecret without a token,
// so a caller can reject bad input before any other exchange.
func ValidateSecret(secretBase32 string, counter uint64) error {
	secret, err := decodeSecret(secretBase32, counter)
	clear(secret)
	return err
}

func decodeSecret(secretBase32 string, counter uint64) ([]byte, error) {
	if counter >= MaxCounter {
		return nil, fmt.Errorf("%w: %d (must be below %d)", ErrCounterOutOfRange, counter, uint64(MaxCounter))
	}

	secret, err := DecodeBase32(secretBase32)
	if err != nil {
		return nil, err
	}
	if len(secret) > MaxSecretSize {
		clear(secret)
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrSecretTooLong, len(secret), MaxSecretSize)
	}
	return secret, nil
}

// VerifyCode asks the token to check code against the slot.
// ResultSuccess means the code is valid.
func (s *Session) VerifyCode(code uint32) (Result, error) {
	s.reset()

	ex, err := s.exchange(InsVerifyCode,
		tlv.New(TagCredentialID, tlv.Text(s.credential.ID)),
		tlv.New(TagResponse, tlv.Integer(code)),
	)
	if err != nil {
		return ResultNone, err
	}
	return Interpret(InsVerifyCode, ex.Status), nil
}

// QueryStatus selects the application and reads its status fields.
//
// A missing PIN counter or serial number is reported through the presence
// flags of Status; the result is then ResultNoPINAttempts if the PIN counter
// is absent. A missing firmware version makes the result ResultCommError.
func (s *Session) QueryStatus() (*Status, Result, error) {
	s.reset()

	ex, err := s.selectApplication()
	if err != nil {
		return nil, ResultNone, err
	}
	if len(ex.Data) == 0 || ex.Status != iso7816.SW_NO_ERROR {
		s.log.Debug().Str("sw", ex.Status.Verbose()).Int("response_len", len(ex.Data)).Msg("select rejected")
		return nil, ResultCommError, nil
	}

	st, res := parseStatus(ex.Data)
	return st, res, nil
}

func passwordTLV(pin string) tlv.TLV {
	if len(pin) > MaxPINLength {
		pin = pin[:MaxPINLength]
	}
	return tlv.New(TagPassword, tlv.Text(pin))
}
