/*
© 2020–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package pruntime provides low-level introspection into the Go runtime:
// code locations and stack traces used to annotate errors and debug prints.
package pruntime

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// CodeLocation is a single-frame source-code location:
// function name, file and line
type CodeLocation struct {
	// FuncName is the fully qualified function name,
	// eg. "github.com/haraldrudell/parwalk/walk.(*Coordinator).Spawn"
	FuncName string
	// File is the absolute source file path
	File string
	// Line is the 1-based line number inside File
	Line int
}

// NewCodeLocation returns the code location of the caller.
//   - stackFramesToSkip 0 is the invoker of NewCodeLocation
func NewCodeLocation(stackFramesToSkip int) (cl *CodeLocation) {
	var pc = make([]uintptr, 1)
	var n = runtime.Callers(2+stackFramesToSkip, pc)
	cl = &CodeLocation{}
	if n == 0 {
		return
	}
	var frame, _ = runtime.CallersFrames(pc[:n]).Next()
	cl.FuncName = frame.Function
	cl.File = frame.File
	cl.Line = frame.Line
	return
}

// GetCodeLocation converts a [runtime.Frame] to a [CodeLocation]
func GetCodeLocation(frame *runtime.Frame) (cl *CodeLocation) {
	return &CodeLocation{
		FuncName: frame.Function,
		File:     frame.File,
		Line:     frame.Line,
	}
}

// Package returns the package name of the code location, the last
// element of its import path, eg. "walk"
func (cl *CodeLocation) Package() (packageName string) {
	var funcName = cl.FuncName
	if index := strings.LastIndex(funcName, "/"); index != -1 {
		funcName = funcName[index+1:]
	}
	if index := strings.Index(funcName, "."); index != -1 {
		funcName = funcName[:index]
	}
	return funcName
}

// Name returns the bare function or method name
func (cl *CodeLocation) Name() (funcName string) {
	var s = cl.FuncName
	if index := strings.LastIndex(s, "."); index != -1 {
		s = s[index+1:]
	}
	return s
}

// Base returns the file basename
func (cl *CodeLocation) Base() (baseName string) {
	var s = cl.File
	if index := strings.LastIndex(s, "/"); index != -1 {
		s = s[index+1:]
	}
	return s
}

// FuncLine is "FuncName-base.go:Line"
func (cl *CodeLocation) FuncLine() (s string) {
	return cl.Name() + "-" + cl.Base() + ":" + strconv.Itoa(cl.Line)
}

// IsSet returns whether this CodeLocation has data
func (cl *CodeLocation) IsSet() (isSet bool) { return cl.FuncName != "" }

// Short is "FuncName-base.go:Line"
func (cl *CodeLocation) Short() (s string) {
	if cl == nil || !cl.IsSet() {
		return "[unknown]"
	}
	return cl.FuncLine()
}

// Long is "FuncName\n\tFile:Line"
func (cl *CodeLocation) Long() (s string) {
	if cl == nil || !cl.IsSet() {
		return "[unknown]"
	}
	return fmt.Sprintf("%s\n\t%s:%d", cl.FuncName, cl.File, cl.Line)
}

// String implements fmt.Stringer
func (cl CodeLocation) String() (s string) { return cl.Short() }
