package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

// CheckCommand creates the check command.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Ask the token to verify an HOTP code",
		ArgsUsage: "<code>",
		Action:    runCheckCommand,
	}
}

func runCheckCommand(ctx context.Context, cmd *cli.Command) error {
	arg, err := singleArg(cmd, "code")
	if err != nil {
		return err
	}

	return withSession(cmd, func(s *secrets.Session) error {
		code, err := parseCode(arg, s.Credential().Digits)
		if err != nil {
			return cli.Exit(err.Error(), exitUsage)
		}

		if err := outcome(s.VerifyCode(code)); err != nil {
			return err
		}
		printf(cmd, "validation passed\n")
		return nil
	})
}

// parseCode reads a decimal code of exactly digits digits. Leading zeros are significant.
func parseCode(s string, digits int) (uint32, error) {
	s = strings.TrimSpace(s)
	if len(s) != digits {
		return 0, fmt.Errorf("code must have %d digits, got %q", digits, s)
	}
	code, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("code %q is not a decimal number", s)
	}
	return uint32(code), nil
}
