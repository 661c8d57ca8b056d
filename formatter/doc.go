// Package formatter renders log records into bracketed text lines.
//
// Both variants produce the same layout:
//
//	[{timestamp}|{module.function}|{tag}|{LVL}] {message}
//
// where the caller field is padded and truncated to a fixed width so
// columns line up, the tag field appears only when configured, and
// LVL is the three-character level code. Records at ERROR or above
// that carry an error get the error text and captured stack appended
// on the following lines.
//
// ConsoleFormatter adds ANSI colors: by default only the level code
// is colored, and with ColorLine whole non-INFO lines are wrapped in
// the level color instead. FileFormatter emits the identical layout
// with no escapes at all, so files stay grep-clean.
//
// The package exposes three interfaces in increasing order of
// intimacy: Formatter, which returns a []byte; WriterFormatter, which
// writes directly to an io.Writer; and BufferFormatter, which formats
// into a caller-provided buffer. Sinks check for BufferFormatter at
// construction time and prefer it, eliminating the intermediate
// allocation on the write path. Internal buffers are pooled, and
// buffers larger than 64 KiB are not returned to the pool so a single
// huge trace cannot permanently inflate memory usage.
//
// A formatter never fails and never filters: unknown levels render as
// UNK with the reset color, and an unresolvable caller simply drops
// the caller field.
package formatter
