package logger

import (
	"io"

	"github.com/philipp01105/alog/formatter"
	"github.com/philipp01105/alog/sink"
)

// Option configures a Logger during construction
type Option func(*options)

type options struct {
	cfg           formatter.Config
	filePath      string
	rotation      *sink.Rotation
	consoleWriter io.Writer
}

// WithFile attaches a file sink appending to path. Missing parent
// directories are created.
func WithFile(path string) Option {
	return func(o *options) { o.filePath = path }
}

// WithRotation enables size-based rotation for the file sink. The
// setting also applies to files attached later through SetFile.
func WithRotation(r sink.Rotation) Option {
	return func(o *options) { o.rotation = &r }
}

// WithConsoleWriter redirects console output, mainly for tests.
func WithConsoleWriter(w io.Writer) Option {
	return func(o *options) { o.consoleWriter = w }
}

// WithCaller enables or disables the module.function field
func WithCaller(enabled bool) Option {
	return func(o *options) { o.cfg.IncludeCaller = enabled }
}

// WithFieldWidth sets the exact width of the caller field
func WithFieldWidth(width int) Option {
	return func(o *options) { o.cfg.FieldWidth = width }
}

// WithTag sets the free-form tag rendered in every line
func WithTag(tag string) Option {
	return func(o *options) { o.cfg.Tag = tag }
}

// WithTimeFormat sets the timestamp layout (empty for the default)
func WithTimeFormat(layout string) Option {
	return func(o *options) { o.cfg.TimestampFormat = layout }
}

// WithColoring controls console coloring. The flags are coupled:
// line coloring implies a colored level code.
func WithColoring(level, line bool) Option {
	return func(o *options) {
		o.cfg.ColorLevel = level
		o.cfg.ColorLine = line
	}
}
