package sink

import (
	"io"
	"os"
	"path/filepath"

	"github.com/philipp01105/alog/core"
	"github.com/philipp01105/alog/formatter"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation configures size-based rotation of the log file.
type Rotation struct {
	// MaxSize is the maximum size in megabytes before rotation
	MaxSize int
	// MaxBackups is the maximum number of rotated files to retain (0 = keep all)
	MaxBackups int
	// MaxAge is the maximum age in days of a rotated file (0 = keep forever)
	MaxAge int
	// Compress gzips rotated files
	Compress bool
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Path is the log file to append to; missing parent directories are created
	Path string
	// Formatter to use (default: FileFormatter with DefaultConfig)
	Formatter formatter.Formatter
	// Rotation enables size-based rotation when non-nil
	Rotation *Rotation
}

// FileSink appends rendered records to a log file
type FileSink struct {
	base
	path   string
	closer io.Closer
}

// NewFileSink opens (or creates) the log file in append mode and
// returns a sink writing to it.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Path == "" {
		return nil, errors.New("file sink: path is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewFileFormatter(formatter.DefaultConfig())
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory %s", dir)
	}

	var w io.WriteCloser
	if cfg.Rotation != nil {
		w = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.Rotation.MaxSize,
			MaxBackups: cfg.Rotation.MaxBackups,
			MaxAge:     cfg.Rotation.MaxAge,
			Compress:   cfg.Rotation.Compress,
		}
	} else {
		file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "open log file %s", cfg.Path)
		}
		w = file
	}

	s := &FileSink{path: cfg.Path, closer: w}
	s.init(w, cfg.Formatter)
	return s, nil
}

// Emit formats and appends a single record
func (s *FileSink) Emit(rec *core.Record) error {
	return s.write(rec)
}

// Path returns the file the sink writes to.
func (s *FileSink) Path() string {
	return s.path
}

// Close closes the underlying file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closer.Close()
}
