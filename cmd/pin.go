package cmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

// SetPINCommand creates the set-pin command.
func SetPINCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-pin",
		Usage:     "Set the administrator PIN of the secrets application",
		ArgsUsage: "<pin>",
		Action:    runSetPINCommand,
	}
}

// AuthenticateCommand creates the authenticate command.
func AuthenticateCommand() *cli.Command {
	return &cli.Command{
		Name:      "authenticate",
		Usage:     "Verify the administrator PIN",
		ArgsUsage: "<pin>",
		Action:    runAuthenticateCommand,
	}
}

func runSetPINCommand(ctx context.Context, cmd *cli.Command) error {
	pin, err := singleArg(cmd, "pin")
	if err != nil {
		return err
	}
	return withSession(cmd, func(s *secrets.Session) error {
		if err := outcome(s.SetPIN(pin)); err != nil {
			return err
		}
		printf(cmd, "PIN set\n")
		return nil
	})
}

func runAuthenticateCommand(ctx context.Context, cmd *cli.Command) error {
	pin, err := singleArg(cmd, "pin")
	if err != nil {
		return err
	}
	return withSession(cmd, func(s *secrets.Session) error {
		if err := outcome(s.Authenticate(pin)); err != nil {
			return err
		}
		printf(cmd, "PIN verified\n")
		return nil
	})
}

// singleArg returns the only positional argument of cmd.
func singleArg(cmd *cli.Command, name string) (string, error) {
	if cmd.NArg() != 1 {
		return "", cli.Exit("expected exactly one <"+name+"> argument", exitUsage)
	}
	return cmd.Args().First(), nil
}
