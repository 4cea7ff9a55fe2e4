// Package logging builds the logrus loggers used by commands and services.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface services accept.
type Logger = logrus.FieldLogger

// New returns a text logger writing to w. Debug enables debug output,
// otherwise only warnings and errors are written.
func New(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return log
}
