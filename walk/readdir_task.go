/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/haraldrudell/parwalk/perrors"
)

// readDirBatch bounds each os.File.ReadDir call so that an enumeration
// failure partway through a large directory still leaves the
// already-read entries intact, per §7 kind 3
const readDirBatch = 256

// task is one read-directory task (C2): it opens one directory,
// materializes entry records, runs the user callback, classifies
// children, publishes its result, then spawns one task per recursing
// child
type task[S any] struct {
	co        *coordinator[S]
	node      *node[S]
	abs       string
	depth     int
	ancestors []string
	state     S
}

// run executes the task to completion: publish, then spawn children
func (t *task[S]) run() {
	l, err := t.read()
	t.co.tree.publish(t.node, l, err)
	if err != nil || t.co.isCancelled() {
		return
	}
	for i, child := range l.children {
		if child == nil {
			continue
		}
		var e = l.entries[i]
		var childAbs = e.Abs()
		var child2 = &task[S]{
			co:        t.co,
			node:      child,
			abs:       childAbs,
			depth:     e.Depth,
			ancestors: t.childAncestors(childAbs),
			state:     t.co.conf.clone(e.State),
		}
		t.co.p.spawn(child2.run)
	}
}

// childAncestors returns the ancestor set the directory at childAbs
// inherits when descended into: t's own set (which, by invariant, already
// includes t.abs) plus childAbs's canonicalization. Computed only when
// symlink-following is enabled (§4.1, §4.6)
func (t *task[S]) childAncestors(childAbs string) (ancestors []string) {
	if !t.co.conf.followLinks {
		return nil
	}
	var self = childAbs
	if canon, err := filepath.EvalSymlinks(childAbs); err == nil {
		self = canon
	}
	ancestors = make([]string, len(t.ancestors)+1)
	copy(ancestors, t.ancestors)
	ancestors[len(t.ancestors)] = self
	return
}

// read performs steps 1-5 of §4.1: open, enumerate, sort, callback,
// classify-and-schedule
func (t *task[S]) read() (l *listing[S], err error) {
	var f *os.File
	if f, err = os.Open(t.abs); perrors.Is(&err, "os.Open %w", err) {
		return
	}
	defer f.Close()

	var parent = &ParentPath{Abs: t.abs}
	var entries []*Entry[S]
	var enumerateErr error
	for {
		var raw []fs.DirEntry
		raw, enumerateErr = f.ReadDir(readDirBatch)
		for _, de := range raw {
			var name = de.Name()
			if t.co.conf.skipHidden && name != "" && name[0] == '.' {
				continue
			}
			entries = append(entries, &Entry[S]{
				Name:       name,
				Depth:      t.depth + 1,
				Parent:     parent,
				Type:       classify(de),
				FollowLink: t.co.conf.followLinks && de.Type()&fs.ModeSymlink != 0,
			})
		}
		if enumerateErr != nil {
			break
		}
	}
	if t.co.conf.sort {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	}

	if enumerateErr != nil && enumerateErr != io.EOF {
		perrors.Is(&enumerateErr, "os.File.ReadDir %w", enumerateErr)
		entries = append(entries, &Entry[S]{
			Depth:             t.depth + 1,
			Parent:            parent,
			ReadChildrenError: enumerateErr,
		})
	}

	var state = t.state
	if fn := t.co.conf.processDir; fn != nil {
		fn(t.depth+1, t.abs, &state, &entries)
	}
	for _, e := range entries {
		e.State = state
	}

	// children always starts as a fresh, fully-nil slice sized to entries:
	// every slot but the ones filled in below stays nil (not descended)
	var children = make([]*node[S], len(entries))
	var maxDepth = t.co.effectiveMaxDepth()
	for i, e := range entries {
		// a directory at depth == maxDepth is yielded but never descended
		if e.SkipChildren || e.Depth >= maxDepth || t.co.isCancelled() {
			continue
		}
		switch {
		case e.Type == TypeDirectory:
			children[i] = t.co.tree.scheduleChild()
		case e.Type == TypeSymlink && e.FollowLink:
			var res = resolveSymlink(e.Abs(), t.ancestors)
			if res.err != nil {
				e.ReadChildrenError = res.err
			} else if res.targetIsDir && !res.ancestorCycle {
				children[i] = t.co.tree.scheduleChild()
			}
		}
	}

	if lg := t.co.conf.debug; lg != nil {
		var childCount int
		for _, c := range children {
			if c != nil {
				childCount++
			}
		}
		lg.Debug("walk %s: dir=%q entries=%d children=%d", t.co.id, t.abs, len(entries), childCount)
	}

	l = &listing[S]{entries: entries, children: children}
	return
}

// classify converts a [fs.DirEntry]'s cheaply available type bits into a
// [FileType] without an additional stat call
func classify(de fs.DirEntry) (t FileType) {
	switch {
	case de.IsDir():
		return TypeDirectory
	case de.Type()&fs.ModeSymlink != 0:
		return TypeSymlink
	case de.Type().IsRegular():
		return TypeRegular
	default:
		return TypeOther
	}
}
