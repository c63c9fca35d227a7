/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSymlinkToDirectory(t *testing.T) {
	var root = t.TempDir()
	var target = filepath.Join(root, "dir")
	if err := os.Mkdir(target, 0o700); err != nil {
		t.Fatal(err)
	}
	var link = filepath.Join(root, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	var res = resolveSymlink(link, nil)
	if res.err != nil {
		t.Fatalf("resolveSymlink: %s", res.err)
	}
	if !res.targetIsDir {
		t.Error("targetIsDir = false, want true")
	}
	if res.ancestorCycle {
		t.Error("ancestorCycle = true, want false")
	}
}

func TestResolveSymlinkDetectsAncestorCycle(t *testing.T) {
	var root = t.TempDir()
	var link = filepath.Join(root, "link")
	if err := os.Symlink(root, link); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	var res = resolveSymlink(link, []string{root})
	if res.err != nil {
		t.Fatalf("resolveSymlink: %s", res.err)
	}
	if !res.ancestorCycle {
		t.Error("ancestorCycle = false, want true")
	}
}

func TestResolveSymlinkBrokenTarget(t *testing.T) {
	var root = t.TempDir()
	var link = filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(root, "missing"), link); err != nil {
		t.Skipf("symlinks unavailable: %s", err)
	}

	var res = resolveSymlink(link, nil)
	if res.err == nil {
		t.Error("expected an error resolving a broken symlink")
	}
}
