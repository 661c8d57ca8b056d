package callwrap

import "github.com/philipp01105/alog/logger"

// wrapLogger resolves the logger bound at wrap time: the configured
// one, or the package default.
func wrapLogger[R any](o Options[R]) *logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Default()
}

// Func0 wraps a no-argument callable
func Func0[R any](fn func() (R, error), o Options[R]) func() (R, error) {
	lg := wrapLogger(o)
	name := o.name(fn)
	return func() (R, error) {
		return invoke(lg, o, name, fn)
	}
}

// Func1 wraps a one-argument callable
func Func1[A, R any](fn func(A) (R, error), o Options[R]) func(A) (R, error) {
	lg := wrapLogger(o)
	name := o.name(fn)
	return func(a A) (R, error) {
		return invoke(lg, o, name, func() (R, error) { return fn(a) })
	}
}

// Func2 wraps a two-argument callable
func Func2[A, B, R any](fn func(A, B) (R, error), o Options[R]) func(A, B) (R, error) {
	lg := wrapLogger(o)
	name := o.name(fn)
	return func(a A, b B) (R, error) {
		return invoke(lg, o, name, func() (R, error) { return fn(a, b) })
	}
}
