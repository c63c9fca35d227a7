/*
© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package perrors enrichens error values with stack traces and
// associated errors, while remaining wire-compatible with the
// standard library's error, errors.Is and errors.As.
package perrors

import (
	"errors"

	"github.com/haraldrudell/parwalk/errorglue"
)

const newStackFrames = 1

// New is like [errors.New] but the returned error carries a stack trace
func New(s string) (err error) {
	return errorglue.NewErrorChain(errors.New(s), newStackFrames)
}

// NewPF is like New but prepends the calling function's identifier
func NewPF(s string) (err error) {
	return errorglue.NewErrorChain(errors.New(callerPrefix(newStackFrames)+s), newStackFrames)
}
