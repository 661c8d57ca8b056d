package sink

import (
	"io"
	"os"

	"github.com/philipp01105/alog/core"
	"github.com/philipp01105/alog/formatter"
)

// ConsoleSink writes rendered records to a terminal writer
type ConsoleSink struct {
	base
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: ConsoleFormatter with DefaultConfig)
	Formatter formatter.Formatter
}

// NewConsoleSink creates a new console sink
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewConsoleFormatter(formatter.DefaultConfig())
	}

	s := &ConsoleSink{}
	s.init(cfg.Writer, cfg.Formatter)
	return s
}

// Emit formats and writes a single record
func (s *ConsoleSink) Emit(rec *core.Record) error {
	return s.write(rec)
}

// Close is a no-op: the sink does not own its writer.
func (s *ConsoleSink) Close() error {
	return nil
}
