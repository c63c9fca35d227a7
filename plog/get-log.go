/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package plog

import (
	"io"
	"log"

	"github.com/haraldrudell/parwalk/plogger"
)

// GetLog returns a shared log.Logger instance for writer, thread-safe for
// the standard output file descriptors
func GetLog(writer io.Writer) (logger *log.Logger) {
	return plogger.GetLog(writer)
}
