package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/alog/core"
)

// FileFormatter renders records in the same bracketed layout as
// ConsoleFormatter but never emits ANSI escapes, keeping log files
// grep-clean.
type FileFormatter struct {
	Config
}

// NewFileFormatter creates a file formatter. The coloring fields are
// normalized for consistency but never consulted; files always
// receive plain text.
func NewFileFormatter(cfg Config) *FileFormatter {
	cfg.Normalize()
	return &FileFormatter{Config: cfg}
}

// Format formats a record as a plain text line
func (f *FileFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *FileFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.FormatRecord(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord writes the rendered record into the given buffer.
func (f *FileFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	f.appendTimestamp(buf, rec)
	f.appendCallerField(buf, rec)
	f.appendTag(buf)
	buf.WriteByte('|')
	buf.WriteString(rec.Level.Code())
	buf.WriteString("] ")
	buf.WriteString(rec.Message)
	appendTrace(buf, rec)
	buf.WriteByte('\n')
}
