/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"os"
	"path/filepath"

	"github.com/haraldrudell/parwalk/perrors"
)

// symlinkResolution is the outcome of resolving one symlink entry (C7)
type symlinkResolution struct {
	// targetIsDir is true if the symlink's target exists and is a directory
	targetIsDir bool
	// ancestorCycle is true iff the canonicalized target equals an
	// element of the ancestor set already being descended
	ancestorCycle bool
	// err is set if the target could not be stat'ed
	err error
}

// resolveSymlink stats abs's target and checks it against ancestors, the
// canonicalized paths of every directory currently being descended into
func resolveSymlink(abs string, ancestors []string) (res symlinkResolution) {
	var target string
	var err error
	if target, err = filepath.EvalSymlinks(abs); err != nil {
		res.err = perrors.ErrorfPF("filepath.EvalSymlinks %w", err)
		return
	}

	for _, a := range ancestors {
		if a == target {
			res.ancestorCycle = true
			return
		}
	}

	var fi os.FileInfo
	if fi, err = os.Stat(target); err != nil {
		res.err = perrors.ErrorfPF("os.Stat %w", err)
		return
	}
	res.targetIsDir = fi.IsDir()
	return
}
