/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"time"

	"github.com/haraldrudell/parwalk/plog"
)

// ProcessFunc is the user callback invoked once per directory, in the
// task that read it. It may reorder, drop or annotate entries and may
// mutate state; the mutated state becomes the snapshot this directory's
// descending children inherit
type ProcessFunc[S any] func(depth int, dirPath string, state *S, entries *[]*Entry[S])

// config holds the validated assembly of walk parameters (C6)
type config[S any] struct {
	sort bool

	serial       bool
	fixedN       int
	existingPool ExternalPool
	busyTimeout  time.Duration

	minDepth int
	maxDepth int

	followLinks bool
	skipHidden  bool

	initState  S
	processDir ProcessFunc[S]
	clone      func(S) S

	debug *plog.LogInstance
}

// defaultConfig returns the zero-value defaults from §4.5: adaptive
// parallelism (a fixed pool sized by GOMAXPROCS), depth unbounded
func defaultConfig[S any]() (c *config[S]) {
	return &config[S]{
		maxDepth: -1,
		clone:    func(s S) S { return s },
	}
}

// CloneState overrides how a directory's post-callback state is copied
// for each descending child. The default is a plain Go value copy, which
// is a correct clone for any state type built entirely of value types; a
// state type holding reference types (maps, slices, pointers) must supply
// its own deep-copying clone to get independent per-subtree state
func CloneState[S any](fn func(S) S) Option[S] {
	return func(c *config[S]) { c.clone = fn }
}

// Option configures a [Walker] built by [New]
type Option[S any] func(*config[S])

// Sorted enables byte-wise lexicographic sorting of each directory's
// entries by raw name, before the user callback runs
func Sorted[S any]() Option[S] {
	return func(c *config[S]) { c.sort = true }
}

// Serial degenerates the walk to a direct, single-threaded call stack
func Serial[S any]() Option[S] {
	return func(c *config[S]) { c.serial = true }
}

// FixedParallelism runs read-directory tasks with at most n running at a
// time; n <= 0 means GOMAXPROCS
func FixedParallelism[S any](n int) Option[S] {
	return func(c *config[S]) { c.fixedN = n }
}

// ExistingPool runs read-directory tasks on a caller-provided pool. If
// busyTimeout is positive, iterator construction probes the pool and fails
// with [ErrPoolBusy] rather than hanging if it does not respond in time
func ExistingPool[S any](p ExternalPool, busyTimeout time.Duration) Option[S] {
	return func(c *config[S]) {
		c.existingPool = p
		c.busyTimeout = busyTimeout
	}
}

// MinDepth filters yielded entries to depth >= d; it does not affect descent
func MinDepth[S any](d int) Option[S] {
	return func(c *config[S]) { c.minDepth = d }
}

// MaxDepth filters yielded entries to depth <= d and blocks descent past d
func MaxDepth[S any](d int) Option[S] {
	return func(c *config[S]) { c.maxDepth = d }
}

// FollowLinks enables descending into directory-typed symlinks, subject to
// an ancestor-cycle check
func FollowLinks[S any]() Option[S] {
	return func(c *config[S]) { c.followLinks = true }
}

// SkipHidden filters out entries whose name begins with a dot
func SkipHidden[S any]() Option[S] {
	return func(c *config[S]) { c.skipHidden = true }
}

// InitialState sets the user-state value passed into the root directory's
// callback
func InitialState[S any](s S) Option[S] {
	return func(c *config[S]) { c.initState = s }
}

// ProcessDir registers the per-directory callback
func ProcessDir[S any](fn ProcessFunc[S]) Option[S] {
	return func(c *config[S]) { c.processDir = fn }
}

// Debug wires a [plog.LogInstance] into the walk: the coordinator emits one
// debug line per walk giving the per-walk correlation id and the
// parallelism strategy in effect, and every read-directory task emits one
// debug line giving its entry and child counts. The walk emits no debug
// output at all unless this option is given
func Debug[S any](lg *plog.LogInstance) Option[S] {
	return func(c *config[S]) { c.debug = lg }
}
