package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// CallerInfo identifies the source line of a log call
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// GetCaller retrieves caller information. A skip of 0 identifies the
// function that calls GetCaller, 1 identifies its caller, and so on.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}

// CallerFromPC resolves a program counter, as recorded by slog.Record.PC.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
		Defined:  true,
	}
}

// ShortFile returns the base name of the file.
func (c CallerInfo) ShortFile() string {
	return filepath.Base(c.File)
}

// String renders file:line, or "???:0" when the call site is unknown.
func (c CallerInfo) String() string {
	if !c.Defined {
		return "???:0"
	}
	return c.File + ":" + strconv.Itoa(c.Line)
}
