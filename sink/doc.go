// Package sink delivers rendered records to their destinations.
//
// Two sinks exist. ConsoleSink writes colored lines to a terminal
// writer (os.Stdout unless overridden) and FileSink appends plain
// lines to a log file, optionally rotated by size. Both serialize
// writes with a mutex so concurrent loggers never interleave lines,
// and both accept a replacement formatter at runtime through
// SetFormatter.
package sink
