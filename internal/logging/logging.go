// Package logging provides the single hclog.Logger construction path
// used across the proof engine and its CLI, so every component shares
// the same level and output configuration; each caller picks its
// logger's name.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// EnvLogLevel is the environment variable consulted for the default
// logger's level. An unset or unrecognized value (for which
// hclog.LevelFromString returns NoLevel) falls back to Warn.
const EnvLogLevel = "AXIOMPROOF_LOG"

var defaultLogger hclog.Logger

func init() {
	defaultLogger = New("axiomproof")
}

// New builds a logger named name, leveled from the AXIOMPROOF_LOG
// environment variable, writing to stderr so stdout stays reserved for
// a command's proof output.
func New(name string) hclog.Logger {
	level := hclog.LevelFromString(os.Getenv(EnvLogLevel))
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: os.Stderr,
	})
}

// Default returns the package-wide logger, named "axiomproof". Callers
// that need a distinct name (a specific subcommand, a library
// component under test) should call New directly instead.
func Default() hclog.Logger {
	return defaultLogger
}
