package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/alog/core"
)

// ConsoleFormatter renders records as bracketed single lines with ANSI
// colors for terminal output:
//
//	[2026-02-18 13:00:05.123|server.handleConn   |INF] listener ready
//
// With ColorLevel, only the three-character code is wrapped in the
// level's color. With ColorLine, entire non-INFO lines are wrapped
// instead and the code stays bare inside the wrap; INFO lines keep
// their self-colored code and are never wrapped whole.
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a console formatter. The coloring fields
// are normalized first: ColorLine forces ColorLevel on, and a disabled
// ColorLevel forces ColorLine off.
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	cfg.Normalize()
	return &ConsoleFormatter{Config: cfg}
}

// Format formats a record as a colored console line
func (f *ConsoleFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *ConsoleFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.FormatRecord(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord writes the rendered record into the given buffer.
func (f *ConsoleFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	code := rec.Level.Code()
	color := ColorFor(code)
	wrapLine := f.ColorLine && code != "INF"

	if wrapLine {
		buf.WriteString(color)
	}

	buf.WriteByte('[')
	f.appendTimestamp(buf, rec)
	f.appendCallerField(buf, rec)
	f.appendTag(buf)
	buf.WriteByte('|')
	switch {
	case wrapLine:
		// The wrap supplies the color; a nested escape would reset it
		// mid-line.
		buf.WriteString(code)
	case f.ColorLevel:
		buf.WriteString(color)
		buf.WriteString(code)
		buf.WriteString(colorReset)
	default:
		buf.WriteString(code)
	}
	buf.WriteString("] ")
	buf.WriteString(rec.Message)
	appendTrace(buf, rec)

	if wrapLine {
		buf.WriteString(colorReset)
	}
	buf.WriteByte('\n')
}
