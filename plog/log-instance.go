/*
© 2020–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package plog

import (
	"io"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/haraldrudell/parwalk/perrors"
	"github.com/haraldrudell/parwalk/pruntime"
)

const (
	// frames to skip in doLog(): Log()/Info() + doLog()
	logInstDefFrames = 2
	// adjusts stack-frame calculation to skip only 1 frame for Debug/D/IsThisDebug
	logInstDebugFrameDelta = -1
	uint32True             uint32 = 1
)

// LogInstance provides logging delegating to log.Logger.Output, with
// optional code-location annotation and debug gating by package-name regexp
type LogInstance struct {
	isSilence uint32 // atomic
	isDebug   uint32 // atomic

	infoLock   sync.RWMutex
	infoRegexp *regexp.Regexp // behind infoLock

	outLock sync.Mutex
	writer  io.Writer
	output  func(calldepth int, s string) error

	stackFramesToSkip int
}

// NewLog returns a logger for a specific writer, stderr if none given
func NewLog(writers ...io.Writer) (lg *LogInstance) {
	var writer io.Writer
	if len(writers) > 0 {
		writer = writers[0]
	}
	if writer == nil {
		writer = os.Stderr
	}
	var logger = GetLog(writer)
	if logger == nil {
		logger = log.New(writer, "", 0)
	}
	return &LogInstance{
		writer:            writer,
		output:            logger.Output,
		stackFramesToSkip: logInstDefFrames,
	}
}

// Log invocations always print. If debug is enabled, code location is appended.
func (lg *LogInstance) Log(format string, a ...any) {
	lg.doLog(format, a...)
}

// Info prints unless silence has been configured with SetSilent(true)
func (lg *LogInstance) Info(format string, a ...any) {
	if atomic.LoadUint32(&lg.isSilence) != 0 {
		return
	}
	lg.doLog(format, a...)
}

// Debug outputs only if debug is configured, or the caller's fully
// qualified function name matches the regexp set by SetRegexp
func (lg *LogInstance) Debug(format string, a ...any) {
	var cloc *pruntime.CodeLocation
	if atomic.LoadUint32(&lg.isDebug) == 0 {
		var regExp = lg.getRegexp()
		if regExp == nil {
			return
		}
		cloc = pruntime.NewCodeLocation(lg.stackFramesToSkip + logInstDebugFrameDelta)
		if !regExp.MatchString(cloc.FuncName) {
			return
		}
	} else {
		cloc = pruntime.NewCodeLocation(lg.stackFramesToSkip + logInstDebugFrameDelta)
	}
	lg.invokeOutput(appendLocation(Sprintf(format, a...), cloc))
}

// D prints to the instance's writer with code location. Thread-safe.
//   - D is meant for temporary output intended to be removed before check-in
func (lg *LogInstance) D(format string, a ...any) {
	lg.invokeOutput(appendLocation(Sprintf(format, a...), pruntime.NewCodeLocation(lg.stackFramesToSkip+logInstDebugFrameDelta)))
}

// SetDebug turns unconditional debug printing on or off
func (lg *LogInstance) SetDebug(debug bool) {
	var v uint32
	if debug {
		v = uint32True
	}
	atomic.StoreUint32(&lg.isDebug, v)
}

// SetRegexp enables debug printing for call sites whose fully qualified
// function name matches regExp. An empty string disables regexp-based debug.
func (lg *LogInstance) SetRegexp(regExp string) (err error) {
	var regExpPt *regexp.Regexp
	if regExp != "" {
		if regExpPt, err = regexp.Compile(regExp); err != nil {
			return perrors.Errorf("regexp.Compile: %w", err)
		}
	}
	lg.infoLock.Lock()
	defer lg.infoLock.Unlock()
	lg.infoRegexp = regExpPt
	return
}

// SetSilent configures whether Info prints
func (lg *LogInstance) SetSilent(silent bool) {
	var v uint32
	if silent {
		v = uint32True
	}
	atomic.StoreUint32(&lg.isSilence, v)
}

// IsThisDebug returns whether debug logging is active for the caller
func (lg *LogInstance) IsThisDebug() (isDebug bool) {
	if atomic.LoadUint32(&lg.isDebug) != 0 {
		return true
	}
	var regExp = lg.getRegexp()
	if regExp == nil {
		return false
	}
	var cloc = pruntime.NewCodeLocation(lg.stackFramesToSkip - 1)
	return regExp.MatchString(cloc.FuncName)
}

// IsSilent returns whether Info is currently suppressed
func (lg *LogInstance) IsSilent() (isSilent bool) {
	return atomic.LoadUint32(&lg.isSilence) != 0
}

func (lg *LogInstance) invokeOutput(s string) {
	lg.outLock.Lock()
	defer lg.outLock.Unlock()
	if err := lg.output(0, s); err != nil {
		panic(perrors.Errorf("LogInstance output: %w", err))
	}
}

func (lg *LogInstance) getRegexp() *regexp.Regexp {
	lg.infoLock.RLock()
	defer lg.infoLock.RUnlock()
	return lg.infoRegexp
}

func (lg *LogInstance) doLog(format string, a ...any) {
	var s = Sprintf(format, a...)
	if atomic.LoadUint32(&lg.isDebug) != 0 {
		s = appendLocation(s, pruntime.NewCodeLocation(lg.stackFramesToSkip))
	}
	lg.invokeOutput(s)
}

func appendLocation(s string, location *pruntime.CodeLocation) string {
	var sNewline = ""
	if strings.HasSuffix(s, "\n") {
		s = s[:len(s)-1]
		sNewline = "\n"
	}
	return s + " " + location.Short() + sNewline
}
