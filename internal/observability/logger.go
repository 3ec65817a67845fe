package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the console logger on stderr as the global logger.
// Stdout is left to command output.
func InitLogger(app string, verbose bool) zerolog.Logger {
	logger := NewLogger(os.Stderr, app, verbose)
	log.Logger = logger
	return logger
}

// NewLogger builds a console logger writing to out.
func NewLogger(out io.Writer, app string, verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", app).Logger()
}
