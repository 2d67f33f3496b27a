// Package logging provides structured diagnostics for s3du using zerolog.
//
// Diagnostics always go to stderr; stdout is reserved for the usage report.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps routine events off a terminal that is also showing
// the live progress line.
const DefaultLevel = zerolog.WarnLevel

var (
	logger *zerolog.Logger
	pretty bool
)

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger = &l
	zerolog.SetGlobalLevel(DefaultLevel)
}

// Init configures the global logger.
// If human is true, uses a human-friendly console writer and enables the
// "_h" companion fields on completion events.
func Init(level zerolog.Level, human bool) {
	zerolog.SetGlobalLevel(level)
	pretty = human

	var output zerolog.LevelWriter
	if human {
		output = zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}}
	} else {
		output = zerolog.LevelWriterAdapter{Writer: os.Stderr}
	}

	l := zerolog.New(output).With().Timestamp().Logger()
	logger = &l
}

// ParseLevel parses a level name such as "debug" or "warn".
// An empty name selects DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return DefaultLevel, nil
	}
	return zerolog.ParseLevel(name)
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// WithPhase returns a logger with the phase field set.
func WithPhase(phase string) zerolog.Logger {
	return logger.With().Str("phase", phase).Logger()
}

// SetLogger allows overriding the global logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	logger = &l
}

// IsPrettyMode reports whether human-readable companion fields are emitted.
func IsPrettyMode() bool {
	return pretty
}

// SetPrettyMode toggles human-readable companion fields.
func SetPrettyMode(on bool) {
	pretty = on
}
