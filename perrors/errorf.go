/*
© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"fmt"

	"github.com/haraldrudell/parwalk/errorglue"
	"github.com/haraldrudell/parwalk/pruntime"
)

const errorfStackFrames = 1

// Errorf is like [fmt.Errorf] but the returned error carries a stack trace
// if it does not already have one
func Errorf(format string, a ...any) (err error) {
	return errorglue.NewErrorChain(fmt.Errorf(format, a...), errorfStackFrames)
}

// ErrorfPF is like Errorf but prepends the calling function's identifier
func ErrorfPF(format string, a ...any) (err error) {
	return errorglue.NewErrorChain(fmt.Errorf(callerPrefix(errorfStackFrames)+format, a...), errorfStackFrames)
}

// callerPrefix returns "Package.Func: " for the function skip frames up
// the call stack from its own invoker
func callerPrefix(skip int) (prefix string) {
	var cl = pruntime.NewCodeLocation(skip + 1)
	if !cl.IsSet() {
		return
	}
	return cl.Package() + "." + cl.Name() + ": "
}
