/*
Package secrets drives the secrets application of a security token to manage
a single HOTP verification slot.

A Session owns fixed-size command and response buffers and performs exactly
one logical exchange per operation:

	session, err := secrets.NewSession(card, secrets.WithLogger(logger))
	if err != nil {
	    return err
	}

	res, err := session.Authenticate(pin)
	if err != nil {
	    return err // transport failure
	}
	if err := res.Err(); err != nil {
	    return err // e.g. ErrWrongPIN
	}

Operations return a Result classifying the status word of the exchange
together with an error for transport failures and rejected arguments.
Arguments are always checked before anything is transmitted.

A Session is not safe for concurrent use; open one per goroutine and card.
*/
package secrets
