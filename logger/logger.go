// Package logger builds the charm loggers shared by the command line and the engine.
package logger

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a text logger writing to w, timestamps only at debug level.
func New(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: level <= log.DebugLevel,
		Formatter:       log.TextFormatter,
	})
}

// Discard returns a logger that writes nothing.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Level picks the level for a -v count unless name is set, name wins.
// 0 is warn, 1 info, 2 or more debug.
func Level(name string, verbose int) (log.Level, error) {
	if name != "" {
		return log.ParseLevel(name)
	}
	switch {
	case verbose <= 0:
		return log.WarnLevel, nil
	case verbose == 1:
		return log.InfoLevel, nil
	}
	return log.DebugLevel, nil
}
