package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipp01105/alog/core"
	"github.com/philipp01105/alog/logger"
	"go.uber.org/zap/zapcore"
)

// ZapCore is an adapter that implements zapcore.Core on top of a
// Logger, so zap-instrumented code can log through the facade.
type ZapCore struct {
	log    *logger.Logger
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core forwarding to l.
func NewZapCore(l *logger.Logger) *ZapCore {
	return &ZapCore{log: l}
}

// Enabled reports true for every level: the facade has no
// minimum-level filter.
func (c *ZapCore) Enabled(zapcore.Level) bool {
	return true
}

// With returns a core carrying the additional structured fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, len(c.fields)+len(fields))
	copy(merged, c.fields)
	copy(merged[len(c.fields):], fields)
	return &ZapCore{log: c.log, fields: merged}
}

// Check registers this core for the entry.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(ent, c)
}

// Write renders the entry's fields into the message text and forwards
// it. The caller field of the resulting line names this bridge, not
// the zap call site.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var b strings.Builder
	b.WriteString(ent.Message)
	appendZapFields(&b, c.fields)
	appendZapFields(&b, fields)

	c.log.Log(zapLevel(ent.Level), b.String())
	return nil
}

// Sync is a no-op: the sinks write synchronously.
func (c *ZapCore) Sync() error {
	return nil
}

// appendZapFields renders fields as " key=value" pairs in key order.
func appendZapFields(b *strings.Builder, fields []zapcore.Field) {
	if len(fields) == 0 {
		return
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, enc.Fields[k])
	}
}

// zapLevel converts a zapcore.Level to a core.Level. DPanic and above
// map to Critical.
func zapLevel(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarningLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
