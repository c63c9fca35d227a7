/*
© 2022–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package plogger provides shared, thread-safe log.Logger instances for
// the standard output file descriptors.
package plogger

import (
	"io"
	"log"
	"os"
)

// logMap translates an io.Writer instance to a log.Logger instance
var logMap = map[io.Writer]*log.Logger{
	os.Stdout: log.New(os.Stdout, "", 0),
	os.Stderr: log.New(os.Stderr, "", 0),
}

// GetLog returns shared log.Logger instances for file descriptors os.Stdout and os.Stderr.
//   - if the Logger instance is shared, output is thread-safe
//   - for any other writer, a dedicated Logger is created
func GetLog(writer io.Writer) (logger *log.Logger) {
	if logger = logMap[writer]; logger != nil {
		return
	}
	return log.New(writer, "", 0)
}
