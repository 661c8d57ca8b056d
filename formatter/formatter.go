package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/alog/core"
)

// DefaultTimestampFormat is the layout used when Config.TimestampFormat
// is empty: local date and time with millisecond precision.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// DefaultFieldWidth is the standard width of the caller field.
const DefaultFieldWidth = 20

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// Config holds the rendering options shared by both formatter variants.
type Config struct {
	// IncludeCaller enables the module.function field
	IncludeCaller bool
	// FieldWidth is the exact width of the caller field: shorter
	// fields are padded with spaces, longer ones truncated. Zero or
	// negative suppresses the field entirely.
	FieldWidth int
	// Tag is an optional free-form marker rendered after the caller field
	Tag string
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// ColorLevel wraps the level code in its ANSI color (console only)
	ColorLevel bool
	// ColorLine wraps entire non-INFO lines in the level color (console only)
	ColorLine bool
}

// DefaultConfig returns the standard rendering options: caller field
// on at width 20, no tag, default timestamp layout, colored level
// codes, no whole-line coloring.
func DefaultConfig() Config {
	return Config{
		IncludeCaller: true,
		FieldWidth:    DefaultFieldWidth,
		ColorLevel:    true,
	}
}

// Normalize resolves the coloring coupling: whole-line coloring
// implies a colored level code, and disabling the level color
// disables whole-line coloring. The order matters; (false, true)
// normalizes to (true, true), not (false, false).
func (c *Config) Normalize() {
	if c.ColorLine {
		c.ColorLevel = true
	}
	if !c.ColorLevel {
		c.ColorLine = false
	}
}

// timestampFormat returns the effective time layout.
func (c *Config) timestampFormat() string {
	if c.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return c.TimestampFormat
}

// appendTimestamp renders the record time with the effective layout.
// Uses AppendFormat into the buffer's spare capacity to avoid a
// string allocation.
func (c *Config) appendTimestamp(buf *bytes.Buffer, rec *core.Record) {
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), c.timestampFormat()))
}

// appendCallerField renders "|module.function" left-justified and
// truncated to exactly FieldWidth characters. The field is omitted
// when disabled, when the width is not positive, or when the caller
// could not be resolved.
func (c *Config) appendCallerField(buf *bytes.Buffer, rec *core.Record) {
	if !c.IncludeCaller || c.FieldWidth <= 0 || !rec.Caller.Defined {
		return
	}

	start := buf.Len()
	buf.WriteByte('|')
	buf.WriteString(rec.Caller.Module)
	buf.WriteByte('.')
	buf.WriteString(rec.Caller.Function)

	width := buf.Len() - start
	if width > c.FieldWidth {
		buf.Truncate(start + c.FieldWidth)
		return
	}
	for ; width < c.FieldWidth; width++ {
		buf.WriteByte(' ')
	}
}

// appendTag renders "|tag" when a tag is configured.
func (c *Config) appendTag(buf *bytes.Buffer) {
	if c.Tag == "" {
		return
	}
	buf.WriteByte('|')
	buf.WriteString(c.Tag)
}

// appendTrace appends the error text and captured stack for records at
// ErrorLevel or above that carry an error.
func appendTrace(buf *bytes.Buffer, rec *core.Record) {
	if rec.Level < core.ErrorLevel || rec.Err == nil {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(rec.Err.Error())
	if len(rec.Stack) > 0 {
		buf.WriteByte('\n')
		buf.Write(bytes.TrimRight(rec.Stack, "\n"))
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
