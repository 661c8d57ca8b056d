package callwrap

import (
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/philipp01105/alog/logger"
	"github.com/pkg/errors"
)

// Options configures a wrapped callable. R is the callable's result
// type.
type Options[R any] struct {
	// Logger receives the wrapper's log lines. Func wrappers fall back
	// to the package default logger; Method wrappers fall back to the
	// receiver's LoggerProvider.
	Logger *logger.Logger
	// Name overrides the name derived from the callable via reflection
	Name string
	// Default is returned in place of the result when suppressing
	Default R
	// Suppress swallows failures: the wrapper logs them and returns
	// (Default, nil) instead of propagating.
	Suppress bool
	// Verbose logs a line before and after every successful call
	Verbose bool
}

// name resolves the display name for the wrapped callable.
func (o Options[R]) name(fn interface{}) string {
	if o.Name != "" {
		return o.Name
	}
	return callableName(fn)
}

// invoke runs one wrapped call. Failure is a returned non-nil error
// or a panic; both are logged through WithError so the trace block
// renders, then either suppressed or propagated unchanged. A nil
// logger skips the log lines but keeps the policy.
func invoke[R any](lg *logger.Logger, o Options[R], name string, call func() (R, error)) (res R, err error) {
	if o.Verbose && lg != nil {
		lg.Info("Calling %s ...", name)
	}
	start := time.Now()

	defer func() {
		v := recover()
		if v == nil {
			return
		}
		perr, ok := v.(error)
		if !ok {
			perr = errors.Errorf("panic: %v", v)
		}
		if lg != nil {
			lg.WithError(perr).Error("Error in %s: %v", name, perr)
		}
		if !o.Suppress {
			panic(v)
		}
		if lg != nil {
			lg.Warning("Skipping %s due to error.", name)
		}
		res, err = o.Default, nil
	}()

	res, err = call()
	if err != nil {
		if lg != nil {
			lg.WithError(err).Error("Error in %s: %v", name, err)
		}
		if !o.Suppress {
			return res, err
		}
		if lg != nil {
			lg.Warning("Skipping %s due to error.", name)
		}
		return o.Default, nil
	}

	if o.Verbose && lg != nil {
		lg.Info("Finished %s in %.4f seconds.", name, time.Since(start).Seconds())
	}
	return res, nil
}

// callableName derives a short display name from the callable's
// runtime symbol: package path and receiver stripped, the "-fm"
// suffix of bound methods and the type arguments of instantiated
// generics removed.
func callableName(fn interface{}) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "callable"
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	// Type arguments contain dots; cut them before taking the last
	// dot-separated part.
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
