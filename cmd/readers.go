package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// readerLister is replaced in tests.
var readerLister = listReaders

// ReadersCommand creates the readers command.
func ReadersCommand() *cli.Command {
	return &cli.Command{
		Name:   "readers",
		Usage:  "List the PC/SC readers and mark the one that would be used",
		Action: runReadersCommand,
	}
}

func runReadersCommand(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	readers, err := readerLister()
	if err != nil {
		return cli.Exit(err.Error(), exitCommError)
	}
	if len(readers) == 0 {
		printf(cmd, "No reader found\n")
		return nil
	}

	selected, _ := pickReader(readers, cfg.Reader)
	for _, r := range readers {
		marker := " "
		if r == selected {
			marker = "*"
		}
		printf(cmd, "%s %s\n", marker, r)
	}
	return nil
}
