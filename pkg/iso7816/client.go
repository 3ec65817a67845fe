package iso7816

import (
	"errors"
	"fmt"
)

// CLIENT & PROTOCOL LOGIC:
// The Client acts as a driver over the physical connection. It performs one
// logical exchange and handles the ISO 7816-3 transport behaviors that T=0
// readers expose to the application layer:
//
// 1. "61 XX" (Response Available):
//    The token indicates that XX bytes are waiting. The client sends the
//    continuation instruction (GET RESPONSE by default) to retrieve them.
//
// 2. "6C XX" (Wrong Length):
//    The token indicates that the expected length (Le) was incorrect and suggests XX.
//    The client re-sends the original command with Le = XX.
//
// The Send() method returns a Trace, which is a log of all atomic transactions
// needed to fulfill the logical request.

// maxTraceLength bounds the number of transactions of one logical exchange,
// so a token answering 61XX forever cannot hang the caller.
const maxTraceLength = 32

// ErrTraceTooLong is returned when a token keeps requesting continuations.
var ErrTraceTooLong = errors.New("iso7816: too many continuation exchanges")

// Transmitter abstracts the physical card connection.
// *scard.Card satisfies it.
type Transmitter interface {
	Transmit(cmd []byte) ([]byte, error)
}

// Client manages the communication with the token.
type Client struct {
	Card Transmitter

	// GetResponse is the instruction sent when the token answers 61XX.
	// Some applications replace GET RESPONSE with a proprietary instruction.
	GetResponse Instruction
}

// NewClient creates a new Client using the ISO GET RESPONSE instruction.
func NewClient(card Transmitter) *Client {
	return &Client{Card: card, GetResponse: INS_GET_RESPONSE}
}

// Send transmits a command and handles protocol logic (61xx, 6Cxx).
func (c *Client) Send(cmd *CommandAPDU) (Trace, error) {
	return c.send(cmd, nil)
}

func (c *Client) send(cmd *CommandAPDU, trace Trace) (Trace, error) {
	if len(trace) >= maxTraceLength {
		return trace, ErrTraceTooLong
	}

	rawCmd, err := cmd.Bytes()
	if err != nil {
		return trace, fmt.Errorf("encoding error: %w", err)
	}

	rawResp, err := c.Card.Transmit(rawCmd)
	if err != nil {
		return trace, fmt.Errorf("transmission error: %w", err)
	}

	resp, err := ParseResponseAPDU(rawResp)
	if err != nil {
		return trace, err
	}

	trace = append(trace, Transaction{Command: cmd, Response: resp})

	sw1 := resp.Status.SW1()
	sw2 := resp.Status.SW2()

	switch sw1 {
	case 0x61:
		// 61 00 announces 256 bytes or more.
		ne := int(sw2)
		if ne == 0 {
			ne = MaxShortLe
		}
		next := NewCommandAPDU(cmd.Class, c.GetResponse, 0x00, 0x00, nil, ne)
		return c.send(next, trace)

	case 0x6C:
		// Clone command to update Le without mutating the caller's command
		next := *cmd
		next.Ne = int(sw2)
		if next.Ne == 0 {
			next.Ne = MaxShortLe
		}
		return c.send(&next, trace)
	}

	return trace, nil
}
