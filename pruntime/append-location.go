/*
© 2020–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package pruntime

// AppendLocation appends a code location to s for debug-print purposes:
// "s at FuncName-base.go:Line"
func AppendLocation(s string, location *CodeLocation) (s2 string) {
	return s + " at " + location.Short()
}
