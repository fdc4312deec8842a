package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}).Level(lvl).With().Timestamp().Logger(), nil
}
