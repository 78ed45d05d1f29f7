package testutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a silenced logger for tests.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
