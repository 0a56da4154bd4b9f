package rostime

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// DefaultLogger returns the package's logging instance
func DefaultLogger() *logrus.Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger
}

// NewLogger returns a new instance of a logger
func NewLogger() *logrus.Logger {
	return logrus.New()
}
