/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import "sync"

// slotState is the state of one index-tree node's slot
type slotState uint8

const (
	// slotPending: scheduled but not yet completed, no listing yet
	slotPending slotState = iota
	// slotFilled: listing published
	slotFilled
	// slotError: the read-directory task failed for this node
	slotError
)

// node is one slot in the ordered index tree (C3): a directory scheduled
// for reading, whose listing arrives asynchronously from a pool worker
//   - a node is exclusively mutated by the task that publishes into it, or
//     by the single iterator that retires it; both hold the owning tree's
//     mutex while touching node fields, so no per-node lock is needed
//   - cond is waited on by the iterator and broadcast by publish; there is
//     always at most one waiter, since there is exactly one iterator
type node[S any] struct {
	cond *sync.Cond

	state   slotState
	listing *listing[S]
	err     error
}

// newNode returns a Pending node sharing l's lock for its condition variable
func newNode[S any](l sync.Locker) (n *node[S]) {
	return &node[S]{cond: sync.NewCond(l)}
}

// retire releases the listing a filled node held; it is called by the
// iterator once the listing has been fully streamed and, by construction
// of the depth-first cursor, every child it spawned has already retired
func (n *node[S]) retire() {
	n.listing = nil
}
