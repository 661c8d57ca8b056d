// Package adapter bridges log/slog and zap into the logging facade.
//
// Both bridges forward every record regardless of level and render
// structured fields as " key=value" text appended to the message,
// since the facade's line format has no field section of its own.
// The caller field of bridged records names the bridge, not the
// original call site.
package adapter
