package coegg

import (
	"io"
	"os"

	"github.com/chzyer/logex"
)

// LogFn is the logger type
type LogFn func(format string, args ...interface{})

// NewLog creates a logger writing to stderr under the ns namespace.
// Nothing is written unless enable is set.
func NewLog(ns string, enable bool) LogFn {
	return newLog(os.Stderr, ns, enable)
}

func newLog(w io.Writer, ns string, enable bool) LogFn {
	logger := logex.NewLoggerEx(w)

	return func(format string, args ...interface{}) {
		if enable {
			logger.Printf("["+ns+"] "+format, args...)
		}
	}
}
