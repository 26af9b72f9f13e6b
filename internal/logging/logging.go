// Package logging sets up the process-wide zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger on stderr. Verbose mode opens up debug
// logging; otherwise only warnings and errors surface, keeping stdout
// clean for rendered drafts.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
