package callwrap

import "github.com/philipp01105/alog/logger"

// LoggerProvider is implemented by receivers that carry their own
// logger. Method wrappers consult it on every call.
type LoggerProvider interface {
	Logger() *logger.Logger
}

// methodLogger resolves the logger for one method invocation: an
// explicit Options.Logger wins, then the receiver's own logger, else
// nil (which skips logging but keeps the suppression policy).
func methodLogger[R any](o Options[R], recv interface{}) *logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	if p, ok := recv.(LoggerProvider); ok {
		return p.Logger()
	}
	return nil
}

// Method0 wraps a receiver method with no further arguments
func Method0[T, R any](fn func(T) (R, error), o Options[R]) func(T) (R, error) {
	name := o.name(fn)
	return func(recv T) (R, error) {
		return invoke(methodLogger(o, recv), o, name, func() (R, error) { return fn(recv) })
	}
}

// Method1 wraps a receiver method with one argument
func Method1[T, A, R any](fn func(T, A) (R, error), o Options[R]) func(T, A) (R, error) {
	name := o.name(fn)
	return func(recv T, a A) (R, error) {
		return invoke(methodLogger(o, recv), o, name, func() (R, error) { return fn(recv, a) })
	}
}

// Method2 wraps a receiver method with two arguments
func Method2[T, A, B, R any](fn func(T, A, B) (R, error), o Options[R]) func(T, A, B) (R, error) {
	name := o.name(fn)
	return func(recv T, a A, b B) (R, error) {
		return invoke(methodLogger(o, recv), o, name, func() (R, error) { return fn(recv, a, b) })
	}
}
