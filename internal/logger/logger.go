package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// New builds the diagnostics logger. Unknown levels fall back to warn so the
// interactive output stays readable.
func New(level string, w io.Writer) *charmlog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.WarnLevel
	}
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "crmlookup",
	})
}

// Discard returns a logger that drops everything.
func Discard() *charmlog.Logger {
	return charmlog.NewWithOptions(io.Discard, charmlog.Options{Level: charmlog.FatalLevel})
}
