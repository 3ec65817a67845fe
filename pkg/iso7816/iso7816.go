/*
Package iso7816 implements the APDU layer used to talk to a security token according to the ISO/IEC 7816 standard.

It provides Command and Response APDU encodings, Status Word (SW) analysis, the SELECT command and a Client that performs one logical exchange over any Transmitter (a PC/SC card handle, or a fake in tests).

# Fundamentals

The communication with a token is strictly synchronous:
 1. The Host sends a Command APDU (Header + Optional Body).
 2. The Token processes it and returns a Response APDU (Optional Body + Trailer SW1/SW2).

# Status Words

Every response ends with a 2-byte Status Word (SW).
  - 0x9000: Success (OK).
  - 0x61XX: Success, but response data is still available (XX bytes).
  - 0x6CXX: Error, wrong length expectation (XX is the correct length).
  - Other: Various error conditions.

The meaning of a given error SW is often application specific. This package only classifies
status words by their ISO category; mapping them to application outcomes is left to callers.

# Usage Example

	client := iso7816.NewClient(card)

	trace, err := client.Send(iso7816.SelectByAID([]byte{0xA0, 0x00, 0x00, 0x05, 0x27, 0x21, 0x01}))
	if err != nil {
	    log.Fatal(err)
	}

	if trace.IsSuccess() {
	    fmt.Printf("Selected, %d bytes returned\n", len(trace.Data()))
	}
*/
package iso7816
