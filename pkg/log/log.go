package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// NewWithOutput returns a Logger writing warnings and errors to w,
// which is standard error in the command so standard output is left to
// the samples. When verbose is set, debug and info messages are written
// too.
func NewWithOutput(w io.Writer, verbose bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
	}

	return &logger{Logger: l}
}
