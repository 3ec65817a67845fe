package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

// InfoCommand creates the info command.
func InfoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show the firmware version, serial number and PIN attempts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output in JSON format",
			},
		},
		Action: runInfoCommand,
	}
}

func runInfoCommand(ctx context.Context, cmd *cli.Command) error {
	return withSession(cmd, func(s *secrets.Session) error {
		st, res, err := s.QueryStatus()
		if err != nil {
			return outcome(res, err)
		}

		// A missing PIN is part of the report, not a failure.
		if res != secrets.ResultSuccess && res != secrets.ResultNoPINAttempts {
			if st != nil {
				log.Debug().
					Bool("pin_set", st.HasPINAttempts).
					Bool("serial_available", st.HasSerialNumber).
					Msg("partial status discarded")
			}
			return outcome(res, nil)
		}

		if cmd.Bool("json") {
			jsonBytes, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				return cli.Exit(fmt.Sprintf("failed to marshal output: %v", err), exitCommError)
			}
			printf(cmd, "%s\n", jsonBytes)
		} else {
			printf(cmd, "%s\n", st.Describe())
		}
		return nil
	})
}
