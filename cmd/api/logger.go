package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/turnera/internal/config"
)

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg != nil && cfg.IsDevelopment() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
