package adapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/alog/core"
	"github.com/philipp01105/alog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so the facade can serve as a drop-in slog backend.
type SlogHandler struct {
	log *logger.Logger
	// prefix holds the attrs accumulated through WithAttrs, already
	// rendered as " key=value" text.
	prefix string
	group  string
}

// NewSlogHandler creates a slog.Handler forwarding to l.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{log: l}
}

// Enabled reports true for every level: the facade has no minimum-level
// filter.
func (s *SlogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle renders the record's attrs into the message text and forwards
// it. The caller field of the resulting line names this bridge, not
// the slog call site.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.prefix)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	s.log.Log(slogLevel(record.Level), b.String())
	return nil
}

// WithAttrs returns a handler with the attrs rendered into its prefix.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s.prefix)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{log: s.log, prefix: b.String(), group: s.group}
}

// WithGroup returns a handler qualifying subsequent attr keys with
// the group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{log: s.log, prefix: s.prefix, group: group}
}

// appendAttr renders one attr as " key=value", flattening groups into
// dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		g := key
		if g == "" {
			// An inline group passes its attrs through unqualified.
			g = group
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, g, ga)
		}
		return
	}

	if key == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevel converts a slog.Level to a core.Level. Levels above
// LevelError map to Critical.
func slogLevel(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
