// Package logging builds the console logger used by the CLI and the library.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog console logger writing to out. Colour is disabled
// when NO_COLOR is set or out is not a terminal.
func New(out *os.File) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := out.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}
	return NewWriter(out, noColor)
}

// NewWriter returns a console logger on an arbitrary writer.
func NewWriter(w io.Writer, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// Default is the stderr console logger.
func Default() zerolog.Logger { return New(os.Stderr) }
