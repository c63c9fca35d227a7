/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"math"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"
)

// coordinator owns the root node, the index tree and the pool handle (C4):
// it seeds the root read-directory task and enforces the global policies
// that do not belong inside C2 itself
type coordinator[S any] struct {
	// id correlates debug output for one walk invocation
	id        uuid.UUID
	root      string
	conf      *config[S]
	p         pool
	tree      *indexTree[S]
	cancelled atomic.Bool
}

// newCoordinator assembles a coordinator for a walk rooted at root
func newCoordinator[S any](root string, conf *config[S], p pool) (co *coordinator[S]) {
	return &coordinator[S]{
		id:   uuid.New(),
		root: root,
		conf: conf,
		p:    p,
		tree: newIndexTree[S](),
	}
}

// effectiveMaxDepth returns the configured max depth, or the largest
// representable depth when the walk is unbounded
func (co *coordinator[S]) effectiveMaxDepth() (d int) {
	if co.conf.maxDepth < 0 {
		return math.MaxInt
	}
	return co.conf.maxDepth
}

// isCancelled reports whether the iterator has been dropped
func (co *coordinator[S]) isCancelled() (cancelled bool) { return co.cancelled.Load() }

// cancel marks the walk cancelled: in-flight tasks finish their current
// readdir but schedule no further children, then the pool is driven to
// quiescence so resources are released deterministically
func (co *coordinator[S]) cancel() {
	co.cancelled.Store(true)
	co.p.wait()
}

// start seeds the root task and returns the streaming iterator over it.
// The root entry itself is represented by a synthetic single-entry
// listing so the iterator's very first value is the root, per §8
// scenario 1
func (co *coordinator[S]) start() (it *Iterator[S]) {
	var rootNode = co.tree.scheduleChild()
	var rootEntry = &Entry[S]{
		Depth:  0,
		Parent: &ParentPath{Abs: co.root},
		Type:   TypeDirectory,
		State:  co.conf.initState,
	}
	var holder = &node[S]{
		state: slotFilled,
		listing: &listing[S]{
			entries:  []*Entry[S]{rootEntry},
			children: []*node[S]{rootNode},
		},
	}

	var rootAncestors []string
	if co.conf.followLinks {
		var self = co.root
		if canon, err := filepath.EvalSymlinks(co.root); err == nil {
			self = canon
		}
		rootAncestors = []string{self}
	}
	var t = &task[S]{
		co:        co,
		node:      rootNode,
		abs:       co.root,
		depth:     0,
		ancestors: rootAncestors,
		state:     co.conf.initState,
	}
	if lg := co.conf.debug; lg != nil {
		lg.Debug("walk %s: root=%q pool=%s", co.id, co.root, co.p.describe())
	}
	co.p.spawn(t.run)

	return &Iterator[S]{
		co: co,
		cur: &cursor[S]{
			tree:   co.tree,
			stack:  []*frame[S]{{n: holder, l: holder.listing}},
			minDep: co.conf.minDepth,
			maxDep: co.effectiveMaxDepth(),
		},
	}
}
