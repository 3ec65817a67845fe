package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

// SetCommand creates the set command.
func SetCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Write a base32 HOTP secret into the verification slot",
		ArgsUsage: "<base32-secret>",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "counter",
				Usage: "Initial HOTP counter",
			},
			&cli.StringFlag{
				Name:  "pin",
				Usage: "Verify this PIN before writing",
			},
		},
		Action: runSetCommand,
	}
}

func runSetCommand(ctx context.Context, cmd *cli.Command) error {
	secret, err := singleArg(cmd, "base32-secret")
	if err != nil {
		return err
	}
	counter := cmd.Uint64("counter")

	// Rejected before the PIN is sent.
	if err := secrets.ValidateSecret(secret, counter); err != nil {
		return outcome(secrets.ResultNone, err)
	}

	return withSession(cmd, func(s *secrets.Session) error {
		if pin := cmd.String("pin"); pin != "" {
			if err := outcome(s.Authenticate(pin)); err != nil {
				return err
			}
			log.Debug().Msg("PIN verified")
		}

		if err := outcome(s.ProvisionSecret(secret, counter)); err != nil {
			return err
		}

		c := s.Credential()
		printf(cmd, "Secret written to %s (%s, %d digits, counter %d)\n", c.ID, c.Algorithm, c.Digits, counter)
		return nil
	})
}
