/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package errorglue

import (
	"errors"
	"strings"
	"testing"
)

func TestChainStringNilIsOK(t *testing.T) {
	if got := ChainString(nil, LongFormat); got != "OK" {
		t.Errorf("ChainString(nil) = %q, want %q", got, "OK")
	}
}

func TestChainStringDefaultFormatIsBareMessage(t *testing.T) {
	var err = NewErrorChain(errors.New("boom"), 0)
	if got := ChainString(err, DefaultFormat); got != "boom" {
		t.Errorf("ChainString(DefaultFormat) = %q, want %q", got, "boom")
	}
}

func TestChainStringShortAddsLocationOnlyWithStack(t *testing.T) {
	var plain = errors.New("boom")
	if got := ChainString(plain, ShortFormat); got != "boom" {
		t.Errorf("ChainString(ShortFormat) on a stackless error = %q, want bare message", got)
	}

	var withStack = NewErrorChain(errors.New("boom"), 0)
	var got = ChainString(withStack, ShortFormat)
	if got == "boom" || !strings.HasPrefix(got, "boom") {
		t.Errorf("ChainString(ShortFormat) = %q, want message plus location", got)
	}
}

func TestChainStringLongIncludesRelated(t *testing.T) {
	var primary = NewErrorChain(errors.New("primary"), 0)
	var related = NewErrorChain(errors.New("related"), 0)
	var combined = NewRelatedError(primary, related)

	var got = ChainString(combined, LongFormat)
	if !strings.Contains(got, "related") {
		t.Errorf("ChainString(LongFormat) = %q, missing related error", got)
	}
}
