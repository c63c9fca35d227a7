/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// pool is the small capability surface the coordinator needs from a
// worker pool: submit a job (spawn, fire-and-forget) and join to
// quiescence. It is deliberately minimal — the pool itself is an external
// collaborator, not re-specified here
type pool interface {
	// spawn submits job to run, returning immediately
	spawn(job func())
	// wait blocks until every spawned job has returned
	wait()
	// describe renders the parallelism strategy for debug output
	describe() string
}

// ExternalPool is the capability a caller-provided pool must offer to be
// used as the parallelism strategy for a walk: accept a job and run it,
// eventually, without blocking the submitter
//   - implementations must provide spawn semantics: Go must not pin the
//     calling goroutine into the pool's own worker set, or a pool at full
//     capacity submitting its own root task could wedge forever
type ExternalPool interface {
	Go(job func())
}

// serialPool runs every job inline on the submitting goroutine, degenerating
// the walk to a direct, single-threaded call stack
type serialPool struct{}

func (serialPool) spawn(job func()) { job() }
func (serialPool) wait()            {}
func (serialPool) describe() string { return "serial" }

// fixedPool runs jobs across a dedicated, bounded set of goroutines
//   - grounded in the errgroup-plus-semaphore pattern used for concurrent
//     tree walks: an errgroup.Group provides goroutine lifecycle and
//     join-to-quiescence, a channel semaphore bounds concurrent readdir tasks
//     without blocking the submitter
type fixedPool struct {
	eg  errgroup.Group
	sem chan struct{}
	n   int
}

// newFixedPool returns a pool bounded to n concurrent jobs; n <= 0 defaults
// to GOMAXPROCS
func newFixedPool(n int) (p *fixedPool) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p = &fixedPool{n: n, sem: make(chan struct{}, n)}
	return
}

func (p *fixedPool) spawn(job func()) {
	p.eg.Go(func() error {
		p.sem <- struct{}{}
		defer func() { <-p.sem }()
		job()
		return nil
	})
}

func (p *fixedPool) wait() { _ = p.eg.Wait() }

func (p *fixedPool) describe() string { return fmt.Sprintf("fixed(n=%d)", p.n) }

// existingPool adapts a caller-provided [ExternalPool] to the pool
// interface, tracking in-flight jobs locally since the external pool does
// not report quiescence itself
type existingPool struct {
	ext ExternalPool
	wg  sync.WaitGroup
}

func newExistingPool(ext ExternalPool) (p *existingPool) {
	return &existingPool{ext: ext}
}

func (p *existingPool) spawn(job func()) {
	p.wg.Add(1)
	p.ext.Go(func() {
		defer p.wg.Done()
		job()
	})
}

func (p *existingPool) wait() { p.wg.Wait() }

func (p *existingPool) describe() string { return "existing" }

// probeBusy submits a no-op probe job to ext and waits up to timeout for
// it to start executing, so that construction fails fast with
// [ErrPoolBusy] rather than the walk hanging on an overloaded pool
//   - timeout <= 0 means never probe: trust the pool
func probeBusy(ext ExternalPool, timeout time.Duration) (err error) {
	if timeout <= 0 {
		return nil
	}
	var started = make(chan struct{})
	ext.Go(func() { close(started) })
	select {
	case <-started:
		return nil
	case <-time.After(timeout):
		return ErrPoolBusy
	}
}
