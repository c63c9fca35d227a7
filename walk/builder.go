/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

// Walker is the validated assembly of a walk's parameters (C6): a root
// path plus the options from §4.5. A Walker may be used to start any
// number of independent iterators
type Walker[S any] struct {
	root string
	conf *config[S]
}

// New returns a Walker rooted at root, configured by opts
func New[S any](root string, opts ...Option[S]) (w *Walker[S]) {
	var c = defaultConfig[S]()
	for _, opt := range opts {
		opt(c)
	}
	return &Walker[S]{root: root, conf: c}
}

// Iterator starts the walk and returns the infallible streaming iterator.
// If the configured pool reports busy within its timeout, the iterator's
// first and only yielded value carries [ErrPoolBusy]
func (w *Walker[S]) Iterator() (it *Iterator[S]) {
	it, err := w.IteratorErr()
	if err != nil {
		return newFailedIterator[S](err)
	}
	return it
}

// IteratorErr starts the walk and returns the fallible streaming iterator,
// failing construction with [ErrPoolBusy] rather than returning an
// iterator that would hang, per §4.3/§4.4
func (w *Walker[S]) IteratorErr() (it *Iterator[S], err error) {
	var p pool
	if w.conf.serial {
		p = serialPool{}
	} else if w.conf.existingPool != nil {
		if err = probeBusy(w.conf.existingPool, w.conf.busyTimeout); err != nil {
			return nil, err
		}
		p = newExistingPool(w.conf.existingPool)
	} else {
		p = newFixedPool(w.conf.fixedN)
	}

	var co = newCoordinator(w.root, w.conf, p)
	return co.start(), nil
}
