package logger

import (
	"io"
	"os"
	"sync"
)

// Log levels accepted in config.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger writing to stdout. The first call fixes
// the level; later calls return the same instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = New(level, os.Stdout)
	})
	return globalLogger
}

// New builds a standalone logger writing to w.
func New(level string, w io.Writer) *Logger {
	return newZapLogger(level, w)
}
