package core

import (
	"runtime"
	"strings"
)

// CallerInfo identifies the code location that produced a record.
// Module is the caller's package name and Function the function or
// method name within it.
type CallerInfo struct {
	Module   string
	Function string
	Defined  bool
}

// GetCaller retrieves caller information skip frames up the stack
func GetCaller(skip int) CallerInfo {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return CallerInfo{}
	}

	module, function := splitFuncName(fn.Name())
	return CallerInfo{
		Module:   module,
		Function: function,
		Defined:  true,
	}
}

// splitFuncName splits a runtime function name such as
// "github.com/user/proj/server.(*Conn).Accept" into the package name
// ("server") and the function part ("(*Conn).Accept").
func splitFuncName(name string) (module, function string) {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}
