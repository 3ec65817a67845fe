package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/cmd"
)

func main() {
	app := &cli.Command{
		Name:   "hotp-verification",
		Usage:  "Provision and verify HOTP codes on a Nitrokey secrets application",
		Flags:  cmd.GlobalFlags(),
		Before: cmd.Setup,
		Commands: []*cli.Command{
			cmd.InfoCommand(),
			cmd.SetPINCommand(),
			cmd.AuthenticateCommand(),
			cmd.SetCommand(),
			cmd.CheckCommand(),
			cmd.ReadersCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(cmd.ExitCodeOf(err))
	}
}
