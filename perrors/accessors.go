/*
© 2018–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import "github.com/haraldrudell/parwalk/errorglue"

// Short renders err as a single line including the innermost code location
func Short(err error) (s string) {
	return errorglue.ChainString(err, errorglue.ShortFormat)
}

// Long renders err with its full stack trace and any related errors
func Long(err error) (s string) {
	return errorglue.ChainString(err, errorglue.LongFormat)
}
