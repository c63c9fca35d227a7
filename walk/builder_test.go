/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"testing"
	"time"
)

func TestIteratorErrReturnsPoolBusy(t *testing.T) {
	var root = t.TempDir()
	var w = New[struct{}](root, ExistingPool[struct{}](blockedExternalPool{}, 10*time.Millisecond))
	_, err := w.IteratorErr()
	if err != ErrPoolBusy {
		t.Fatalf("err = %v, want ErrPoolBusy", err)
	}
}

func TestIteratorSurfacesPoolBusyAsEntry(t *testing.T) {
	var root = t.TempDir()
	var w = New[struct{}](root, ExistingPool[struct{}](blockedExternalPool{}, 10*time.Millisecond))
	var it = w.Iterator()
	e, ok := it.Next()
	if !ok {
		t.Fatal("expected one entry carrying ErrPoolBusy")
	}
	if e.ReadChildrenError != ErrPoolBusy {
		t.Errorf("ReadChildrenError = %v, want ErrPoolBusy", e.ReadChildrenError)
	}
	if _, ok = it.Next(); ok {
		t.Error("expected exactly one entry")
	}
}

func TestDefaultConfigIsUnboundedDepth(t *testing.T) {
	var c = defaultConfig[struct{}]()
	if c.maxDepth != -1 {
		t.Errorf("maxDepth = %d, want -1", c.maxDepth)
	}
	var s = c.clone(struct{}{})
	if s != (struct{}{}) {
		t.Errorf("default clone changed value: %v", s)
	}
}

func TestCloneStateOptionOverridesDefault(t *testing.T) {
	type state struct{ n int }
	var calls int
	var c = defaultConfig[state]()
	CloneState[state](func(s state) state { calls++; return state{n: s.n + 1} })(c)
	var got = c.clone(state{n: 1})
	if calls != 1 || got.n != 2 {
		t.Errorf("clone = %+v, calls = %d", got, calls)
	}
}
