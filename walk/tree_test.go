/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"testing"
	"time"
)

func TestIndexTreePublishThenAwait(t *testing.T) {
	var tree = newIndexTree[struct{}]()
	var n = tree.scheduleChild()
	var want = &listing[struct{}]{entries: []*Entry[struct{}]{{Name: "x"}}}
	tree.publish(n, want, nil)

	got, err := tree.await(n)
	if err != nil {
		t.Fatalf("await: %s", err)
	}
	if got != want {
		t.Errorf("await returned %p, want %p", got, want)
	}
}

func TestIndexTreeAwaitBlocksUntilPublish(t *testing.T) {
	var tree = newIndexTree[struct{}]()
	var n = tree.scheduleChild()

	var done = make(chan struct{})
	go func() {
		defer close(done)
		tree.await(n)
	}()

	select {
	case <-done:
		t.Fatal("await returned before publish")
	case <-time.After(20 * time.Millisecond):
	}

	tree.publish(n, &listing[struct{}]{}, nil)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("await did not unblock after publish")
	}
}

func TestIndexTreePublishError(t *testing.T) {
	var tree = newIndexTree[struct{}]()
	var n = tree.scheduleChild()
	var wantErr = errTest("boom")
	tree.publish(n, nil, wantErr)

	_, err := tree.await(n)
	if err != wantErr {
		t.Errorf("await err = %v, want %v", err, wantErr)
	}
}

func TestIndexTreeRetireClearsListing(t *testing.T) {
	var tree = newIndexTree[struct{}]()
	var n = tree.scheduleChild()
	tree.publish(n, &listing[struct{}]{entries: []*Entry[struct{}]{{}}}, nil)
	tree.retire(n)
	if n.listing != nil {
		t.Error("retire did not clear listing")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestCursorDepthFirstOrderAcrossTwoLevels(t *testing.T) {
	var tree = newIndexTree[struct{}]()

	var leafNode = tree.scheduleChild()
	tree.publish(leafNode, &listing[struct{}]{
		entries:  []*Entry[struct{}]{{Name: "b", Depth: 2}},
		children: []*node[struct{}]{nil},
	}, nil)

	var childNode = tree.scheduleChild()
	tree.publish(childNode, &listing[struct{}]{
		entries:  []*Entry[struct{}]{{Name: "a", Depth: 1}},
		children: []*node[struct{}]{leafNode},
	}, nil)

	var rootHolder = &node[struct{}]{state: slotFilled}
	var root = &listing[struct{}]{
		entries:  []*Entry[struct{}]{{Name: "", Depth: 0}},
		children: []*node[struct{}]{childNode},
	}

	var cur = &cursor[struct{}]{tree: tree, stack: []*frame[struct{}]{{n: rootHolder, l: root}}, maxDep: 100}

	var names []string
	for {
		e, ok := cur.advance()
		if !ok {
			break
		}
		names = append(names, e.Name)
	}
	if want := []string{"", "a", "b"}; !equalSlices(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}
