/*
© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import "github.com/haraldrudell/parwalk/errorglue"

const isStackFrames = 1

// Is wraps err with format (which must contain exactly one %w verb for err)
// and a stack trace, stores the result in *errp, then reports whether an
// error occurred. If err is nil, *errp is left unchanged.
//
// Usage:
//
//	if entries, err = os.ReadDir(path); perrors.Is(&err, "os.ReadDir %w", err) {
//	  return
//	}
func Is(errp *error, format string, err error) (isError bool) {
	if err == nil {
		return
	}
	*errp = errorglue.NewErrorChain(Errorf(format, err), isStackFrames)
	return true
}
