/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

// Iterator is the consumer-facing streaming sequence (C5): it repeatedly
// asks the ordered index tree for the next filled slot in depth-first
// order and yields its entries one at a time, blocking only when the
// next ordered slot is not yet filled
//   - there is exactly one Iterator per walk, and therefore exactly one
//     waiter parked on the index tree at any time
type Iterator[S any] struct {
	co   *coordinator[S]
	cur  *cursor[S]
	done bool
}

// newFailedIterator returns an iterator that yields err as its only
// value, used by the infallible construction path of [Walker.Iterator]
func newFailedIterator[S any](err error) (it *Iterator[S]) {
	var e = &Entry[S]{ReadChildrenError: err}
	return &Iterator[S]{
		done: false,
		cur: &cursor[S]{
			tree: newIndexTree[S](),
			stack: []*frame[S]{{
				n: &node[S]{state: slotFilled},
				l: &listing[S]{entries: []*Entry[S]{e}, children: []*node[S]{nil}},
			}},
			maxDep: 0,
		},
	}
}

// Next returns the next entry in depth-first pre-order, or ok false once
// the walk is fully drained
func (it *Iterator[S]) Next() (entry *Entry[S], ok bool) {
	if it.done {
		return nil, false
	}
	entry, ok = it.cur.advance()
	if !ok {
		it.done = true
	}
	return
}

// Cancel signals cancellation: in-flight tasks finish their current
// readdir but schedule no further children, and the pool is driven to
// quiescence before Cancel returns
func (it *Iterator[S]) Cancel() {
	it.done = true
	if it.co != nil {
		it.co.cancel()
	}
}
