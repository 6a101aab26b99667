package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var out = newOutput(os.Stderr, false)

func newOutput(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
