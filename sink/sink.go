package sink

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/alog/core"
	"github.com/philipp01105/alog/formatter"
)

// Sink receives fully populated records and writes them out
type Sink interface {
	// Emit formats and writes a single record
	Emit(rec *core.Record) error
	// SetFormatter replaces the formatter used for subsequent records
	SetFormatter(f formatter.Formatter)
	// Close releases any resources held by the sink
	Close() error
}

// base carries the state shared by the console and file sinks: the
// destination writer, the active formatter with its cached fast-path
// interfaces, and a mutex serializing whole lines onto the writer.
type base struct {
	mu        sync.Mutex
	writer    io.Writer
	formatter formatter.Formatter
	buffered  formatter.BufferFormatter
	streamed  formatter.WriterFormatter
	buf       bytes.Buffer
}

func (b *base) init(w io.Writer, f formatter.Formatter) {
	b.writer = w
	b.install(f)
}

// install caches the fast-path interfaces for the new formatter.
// Callers hold b.mu unless the sink is not yet shared.
func (b *base) install(f formatter.Formatter) {
	b.formatter = f
	b.buffered, _ = f.(formatter.BufferFormatter)
	b.streamed, _ = f.(formatter.WriterFormatter)
}

// write formats and writes a record
func (b *base) write(rec *core.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.buffered != nil {
		b.buf.Reset()
		b.buffered.FormatRecord(rec, &b.buf)
		_, err := b.writer.Write(b.buf.Bytes())
		return err
	}
	if b.streamed != nil {
		return b.streamed.FormatTo(rec, b.writer)
	}

	data, err := b.formatter.Format(rec)
	if err != nil {
		return err
	}
	_, err = b.writer.Write(data)
	return err
}

// SetFormatter replaces the formatter used for subsequent records
func (b *base) SetFormatter(f formatter.Formatter) {
	b.mu.Lock()
	b.install(f)
	b.mu.Unlock()
}
