package secrets

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gregLibert/hotp-verification/pkg/iso7816"
	"github.com/gregLibert/hotp-verification/pkg/tlv"
)

// Exchange is the outcome of one command/response round trip.
// Data aliases the session input buffer and is only valid until the next operation.
type Exchange struct {
	Status iso7816.StatusWord
	Data   []byte
}

// Session owns the buffers used to talk to one token.
// Both buffers are zeroed when an operation starts, so nothing from a previous
// command or response is ever sent or read again.
type Session struct {
	client     *iso7816.Client
	credential Credential
	log        zerolog.Logger

	out [OutputBufferSize]byte
	in  [InputBufferSize]byte
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-exchange debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// WithCredential replaces DefaultCredential.
func WithCredential(c Credential) Option {
	return func(s *Session) {
		s.credential = c
	}
}

// NewSession creates a Session on top of card.
func NewSession(card iso7816.Transmitter, opts ...Option) (*Session, error) {
	client := iso7816.NewClient(card)
	client.GetResponse = InsSendRemaining

	s := &Session{
		client:     client,
		credential: DefaultCredential(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.credential.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credential: %w", err)
	}
	return s, nil
}

// Credential returns the slot configuration the session writes and verifies.
func (s *Session) Credential() Credential {
	return s.credential
}

func (s *Session) reset() {
	clear(s.out[:])
	clear(s.in[:])
}

// exchange encodes tlvs under ins into the output buffer and performs the round trip.
func (s *Session) exchange(ins iso7816.Instruction, tlvs ...tlv.TLV) (Exchange, error) {
	cmd, err := NewCommand(ins, tlvs...).Encode(s.out[:])
	if err != nil {
		return Exchange{}, err
	}
	return s.transmit(cmd)
}

// selectApplication issues SELECT on the secrets application AID.
func (s *Session) selectApplication() (Exchange, error) {
	return s.transmit(iso7816.SelectByAID(AID))
}

func (s *Session) transmit(cmd *iso7816.CommandAPDU) (Exchange, error) {
	name := instructionName(cmd.Instruction)

	trace, err := s.client.Send(cmd)
	if err != nil {
		s.log.Debug().Err(err).Str("ins", name).Msg("exchange failed")
		return Exchange{}, fmt.Errorf("%s: %w", name, err)
	}

	data := trace.Data()
	if len(data) > len(s.in) {
		return Exchange{}, fmt.Errorf("%s: %w: %d bytes (max %d)", name, ErrResponseTooLarge, len(data), len(s.in))
	}
	n := copy(s.in[:], data)

	ex := Exchange{Status: trace.Status(), Data: s.in[:n]}

	s.log.Debug().
		Str("ins", name).
		Int("lc", len(cmd.Data)).
		Str("sw", fmt.Sprintf("%04X", uint16(ex.Status))).
		Int("response_len", n).
		Int("steps", len(trace)).
		Msg("exchange")

	return ex, nil
}
