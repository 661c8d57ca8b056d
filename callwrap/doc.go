// Package callwrap wraps callables with automatic failure logging.
//
// A wrapped function behaves exactly like the original until it
// fails. Failure is a returned non-nil error or a panic; either way
// the wrapper logs "Error in <name>: <err>" with a trace block, then
// either propagates the failure unchanged or, with Suppress, logs
// "Skipping <name> due to error." and returns the configured default
// value instead. Verbose adds a line before each call and, on
// success, one after with the elapsed time.
//
// Func0, Func1 and Func2 bind their logger at wrap time, falling back
// to the package default. Method0, Method1 and Method2 resolve the
// logger on every call: an explicit Options.Logger wins, otherwise a
// receiver implementing LoggerProvider supplies its own, otherwise
// the call proceeds without logging.
package callwrap
