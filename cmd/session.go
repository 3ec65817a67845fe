package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gregLibert/hotp-verification/internal/config"
	"github.com/gregLibert/hotp-verification/internal/observability"
	"github.com/gregLibert/hotp-verification/pkg/secrets"
)

const appName = "hotp-verification"

// GlobalFlags returns the flags shared by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to a TOML or YAML configuration file",
			Sources: cli.EnvVars("HOTP_VERIFICATION_CONFIG"),
		},
		&cli.StringFlag{
			Name:  "reader",
			Usage: "Use the reader whose name contains this text",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log every exchange with the token",
		},
	}
}

// Setup installs the logger. It is the Before hook of the root command.
func Setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	observability.InitLogger(appName, cmd.Bool("verbose"))
	return ctx, nil
}

// loadConfig reads --config and applies --reader on top of it.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, cli.Exit(err.Error(), exitUsage)
	}
	if r := cmd.String("reader"); r != "" {
		cfg.Reader = r
	}
	return cfg, nil
}

// withSession connects to the token and runs fn on a fresh session.
func withSession(cmd *cli.Command, fn func(*secrets.Session) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	card, closeCard, err := connect(cfg.Reader)
	if err != nil {
		return cli.Exit(err.Error(), exitCommError)
	}
	defer closeCard()

	s, err := secrets.NewSession(card,
		secrets.WithCredential(cfg.Credential),
		secrets.WithLogger(log.Logger),
	)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	return fn(s)
}

// printf writes command output to the root writer.
func printf(cmd *cli.Command, format string, args ...any) {
	fmt.Fprintf(cmd.Root().Writer, format, args...)
}
