// Package logger is the user-facing logging facade.
//
// A Logger always writes to the console and optionally appends to a
// log file. The same line layout goes to both, colored on the console
// and plain in the file. There is no level filter: every record
// reaches every attached sink. Loggers are reconfigured in place
// through the Set* methods, which swap freshly built formatters into
// the sinks.
//
// The package keeps one default logger, created on first use and
// named after the running executable; the package-level functions
// delegate to it.
package logger
