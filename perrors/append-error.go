/*
© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import "github.com/haraldrudell/parwalk/errorglue"

// AppendError associates err2 with err, returning a combined error.
// If err is nil, err2 is returned unaltered. If err2 is nil, err is
// returned unaltered.
func AppendError(err, err2 error) (e error) {
	if err2 == nil {
		return err
	}
	if err == nil {
		return err2
	}
	return errorglue.NewRelatedError(err, err2)
}

// ErrorList returns every error associated with err, primary error first
func ErrorList(err error) (errs []error) {
	return errorglue.ErrorList(err)
}
