package logger

import (
	"fmt"
	"runtime/debug"

	"github.com/philipp01105/alog/core"
	"github.com/philipp01105/alog/formatter"
	"github.com/philipp01105/alog/sink"
	"go.uber.org/multierr"
)

// baseCallerSkip is the number of frames between runtime.Caller and
// the user's call site when logging through a severity method.
const baseCallerSkip = 3

// Logger dispatches records to a console sink and an optional file
// sink. Logging methods are safe for concurrent use; reconfiguration
// through the Set* methods is not synchronized with logging, so
// reconfigure before sharing the logger across goroutines.
type Logger struct {
	name       string
	cfg        formatter.Config
	console    *sink.ConsoleSink
	file       *sink.FileSink
	rotation   *sink.Rotation
	callerSkip int

	// err and stack are only set on clones returned by WithError.
	err   error
	stack []byte
}

// New creates a logger writing to the console and, when WithFile is
// given, to a log file. File-sink failure fails construction.
func New(name string, opts ...Option) (*Logger, error) {
	o := options{cfg: formatter.DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	o.cfg.Normalize()

	l := &Logger{
		name:       name,
		cfg:        o.cfg,
		rotation:   o.rotation,
		callerSkip: baseCallerSkip,
	}
	l.console = sink.NewConsoleSink(sink.ConsoleConfig{
		Writer:    o.consoleWriter,
		Formatter: formatter.NewConsoleFormatter(o.cfg),
	})

	if o.filePath != "" {
		f, err := sink.NewFileSink(sink.FileConfig{
			Path:      o.filePath,
			Formatter: formatter.NewFileFormatter(o.cfg),
			Rotation:  o.rotation,
		})
		if err != nil {
			return nil, err
		}
		l.file = f
	}

	return l, nil
}

// Name returns the name the logger was created with.
func (l *Logger) Name() string {
	return l.name
}

// FilePath returns the attached log file, or "" without a file sink.
func (l *Logger) FilePath() string {
	if l.file == nil {
		return ""
	}
	return l.file.Path()
}

// Config returns a copy of the current rendering options.
func (l *Logger) Config() formatter.Config {
	return l.cfg
}

// WithError returns a clone carrying err and the stack captured now.
// Error and Critical records logged through the clone render the
// error text and stack beneath the message line.
func (l *Logger) WithError(err error) *Logger {
	clone := *l
	clone.err = err
	clone.stack = debug.Stack()
	return &clone
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(l.callerSkip, core.DebugLevel, msg, args)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(l.callerSkip, core.InfoLevel, msg, args)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, args ...interface{}) {
	l.log(l.callerSkip, core.WarningLevel, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(l.callerSkip, core.ErrorLevel, msg, args)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, args ...interface{}) {
	l.log(l.callerSkip, core.CriticalLevel, msg, args)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, args ...interface{}) {
	l.log(l.callerSkip, level, msg, args)
}

// log builds the record and hands it to every attached sink. There is
// no level gate, and sink write errors do not propagate: logging
// never fails the caller.
func (l *Logger) log(skip int, level core.Level, msg string, args []interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Message = msg
	rec.Err = l.err
	rec.Stack = l.stack
	if l.cfg.IncludeCaller && l.cfg.FieldWidth > 0 {
		rec.Caller = core.GetCaller(skip)
	}

	_ = l.console.Emit(rec)
	if l.file != nil {
		_ = l.file.Emit(rec)
	}

	core.PutRecord(rec)
}

// SetFile attaches a file sink appending to path, closing and
// replacing any previous one. On failure the logger is left with no
// file sink and the error is returned.
func (l *Logger) SetFile(path string) error {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}

	f, err := sink.NewFileSink(sink.FileConfig{
		Path:      path,
		Formatter: formatter.NewFileFormatter(l.cfg),
		Rotation:  l.rotation,
	})
	if err != nil {
		return err
	}
	l.file = f
	return nil
}

// SetTag changes the tag rendered in every line
func (l *Logger) SetTag(tag string) {
	l.cfg.Tag = tag
	l.rebuildFormatters()
}

// SetCaller enables or disables the module.function field
func (l *Logger) SetCaller(enabled bool) {
	l.cfg.IncludeCaller = enabled
	l.rebuildFormatters()
}

// SetFieldWidth changes the exact width of the caller field
func (l *Logger) SetFieldWidth(width int) {
	l.cfg.FieldWidth = width
	l.rebuildFormatters()
}

// SetTimeFormat changes the timestamp layout; empty restores the
// default layout.
func (l *Logger) SetTimeFormat(layout string) {
	l.cfg.TimestampFormat = layout
	l.rebuildFormatters()
}

// SetColoring controls console coloring. Line coloring implies a
// colored level code; disabling the level color disables both.
func (l *Logger) SetColoring(level, line bool) {
	l.cfg.ColorLevel = level
	l.cfg.ColorLine = line
	l.rebuildFormatters()
}

// ResetDefaults restores the default rendering options. An attached
// file sink stays attached.
func (l *Logger) ResetDefaults() {
	l.cfg = formatter.DefaultConfig()
	l.rebuildFormatters()
}

// rebuildFormatters installs fresh formatters reflecting l.cfg on
// every attached sink.
func (l *Logger) rebuildFormatters() {
	l.cfg.Normalize()
	l.console.SetFormatter(formatter.NewConsoleFormatter(l.cfg))
	if l.file != nil {
		l.file.SetFormatter(formatter.NewFileFormatter(l.cfg))
	}
}

// Close closes the logger's sinks
func (l *Logger) Close() error {
	err := l.console.Close()
	if l.file != nil {
		err = multierr.Append(err, l.file.Close())
	}
	return err
}
