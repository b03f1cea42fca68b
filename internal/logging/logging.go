// Package logging configures the logrus logger sniperctl uses for its own
// diagnostics. It is separate from the log level forwarded to the launched
// binary.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvDebug enables debug tracing of stages and subprocess command lines.
const EnvDebug = "SNIPERCTL_DEBUG"

// New returns a text logger writing to w at level.
func New(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(level)
	return l
}

// FromEnv returns a logger at warn level, or debug when SNIPERCTL_DEBUG is
// "1" or "true". Any other non-empty value is parsed as a logrus level name.
func FromEnv(w io.Writer, getenv func(string) string) *logrus.Logger {
	level := logrus.WarnLevel
	switch v := strings.ToLower(strings.TrimSpace(getenv(EnvDebug))); v {
	case "":
	case "1", "true":
		level = logrus.DebugLevel
	default:
		if parsed, err := logrus.ParseLevel(v); err == nil {
			level = parsed
		}
	}
	return New(w, level)
}
