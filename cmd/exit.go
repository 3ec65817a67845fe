package cmd

import (
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

// Process exit codes.
const (
	exitSuccess              = 0
	exitValidationFailed     = 1
	exitUsage                = 2
	exitCommError            = 3
	exitWrongPIN             = 4
	exitSlotNotConfigured    = 5
	exitNoPINAttempts        = 6
	exitSecurityNotSatisfied = 7
)

func exitCode(res secrets.Result) int {
	switch res {
	case secrets.ResultSuccess:
		return exitSuccess
	case secrets.ResultWrongPIN:
		return exitWrongPIN
	case secrets.ResultSlotNotConfigured:
		return exitSlotNotConfigured
	case secrets.ResultNoPINAttempts:
		return exitNoPINAttempts
	case secrets.ResultSecurityNotSatisfied:
		return exitSecurityNotSatisfied
	case secrets.ResultCommError:
		return exitCommError
	default:
		return exitValidationFailed
	}
}

var argumentErrors = []error{
	secrets.ErrCounterOutOfRange,
	secrets.ErrSecretTooLong,
	secrets.ErrInvalidBase32,
	secrets.ErrCredentialIDTooLong,
	secrets.ErrEmptyCredentialID,
	secrets.ErrInvalidDigits,
	secrets.ErrUnknownAlgorithm,
}

// outcome turns the return values of a session operation into the command error.
func outcome(res secrets.Result, err error) error {
	if err != nil {
		for _, target := range argumentErrors {
			if errors.Is(err, target) {
				return cli.Exit(err.Error(), exitUsage)
			}
		}
		return cli.Exit(err.Error(), exitCommError)
	}
	if res == secrets.ResultSuccess {
		return nil
	}
	return cli.Exit(res.String(), exitCode(res))
}

// ExitCodeOf returns the process exit code for an error returned by a command.
// Errors that carry no code, such as flag parsing failures, are usage errors.
func ExitCodeOf(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return exitUsage
}
