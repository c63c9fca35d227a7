/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package plog provides debug-print and diagnostic logging with
// code-location annotation, independent of the [parl] package tree.
package plog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// englishSprintf is like fmt.Sprintf with a thousands separator for numbers
var englishSprintf = message.NewPrinter(language.English).Sprintf

// Sprintf is like fmt.Sprintf but:
//   - does not interpret format if a is empty
//   - has a thousands separator for numbers
func Sprintf(format string, a ...any) (s string) {
	if len(a) == 0 {
		return format
	}
	return englishSprintf(format, a...)
}
