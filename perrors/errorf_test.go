/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"errors"
	"testing"

	"github.com/haraldrudell/parwalk/errorglue"
)

func TestErrorfWrapsAndChains(t *testing.T) {
	var source = errors.New("eof")
	var err = Errorf("read failed: %w", source)
	if !errors.Is(err, source) {
		t.Error("Errorf result does not chain to source via errors.Is")
	}
}

func TestErrorfDoesNotDoubleWrapAnExistingStack(t *testing.T) {
	var inner = New("boom")
	var outer = Errorf("wrapped: %w", inner)
	var innerStack, outerStack = errorglue.StackOf(inner), errorglue.StackOf(outer)
	if innerStack == nil || outerStack == nil {
		t.Fatal("expected both errors to carry a stack")
	}
	if innerStack != outerStack {
		t.Error("Errorf captured a second stack instead of reusing inner's")
	}
}
