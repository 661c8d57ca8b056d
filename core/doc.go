// Package core defines the shared types used across alog.
//
// It provides the Level type with its long names and fixed
// three-character codes (DBG, INF, WRN, ERR, CRT; anything else is
// UNK), the Record type that represents a single log event, and
// caller capture via runtime.Caller.
//
// Record objects are pooled via sync.Pool to keep the logging path
// allocation-free. Callers get a Record with GetRecord and must
// return it with PutRecord once every sink has consumed it; sinks
// write synchronously, so recycling after dispatch is always safe.
//
// GetCaller resolves the calling frame to a package name and a
// function name rather than a file and line, because rendered records
// carry a "module.function" field.
package core
