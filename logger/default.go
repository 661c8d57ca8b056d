package logger

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/philipp01105/alog/core"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// Default returns the default logger, lazily creating a console-only
// logger named after the running executable on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		// SetDefault may have run before first use.
		if defaultLogger == nil {
			defaultLogger, _ = New(filepath.Base(os.Args[0]))
		}
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, args ...interface{}) {
	Default().log(baseCallerSkip, core.DebugLevel, msg, args)
}

// Info logs an info message using the default logger
func Info(msg string, args ...interface{}) {
	Default().log(baseCallerSkip, core.InfoLevel, msg, args)
}

// Warning logs a warning message using the default logger
func Warning(msg string, args ...interface{}) {
	Default().log(baseCallerSkip, core.WarningLevel, msg, args)
}

// Error logs an error message using the default logger
func Error(msg string, args ...interface{}) {
	Default().log(baseCallerSkip, core.ErrorLevel, msg, args)
}

// Critical logs a critical message using the default logger
func Critical(msg string, args ...interface{}) {
	Default().log(baseCallerSkip, core.CriticalLevel, msg, args)
}

// Log logs a message at the specified level using the default logger
func Log(level core.Level, msg string, args ...interface{}) {
	Default().log(baseCallerSkip, level, msg, args)
}

// WithError returns a clone of the default logger carrying err.
func WithError(err error) *Logger {
	return Default().WithError(err)
}
