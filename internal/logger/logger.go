// Package logger configures zerolog for the CLI.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup returns a console logger writing to w at the given level.
// Unknown levels fall back to warn. A nil writer disables logging.
func Setup(level string, w io.Writer, color bool) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
