/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package perrors

import (
	"strings"
	"testing"
)

func TestShortAddsInnermostCodeLocation(t *testing.T) {
	var err = New("boom")
	var short = Short(err)
	if !strings.HasPrefix(short, "boom") {
		t.Errorf("Short = %q, want it to start with the error message", short)
	}
	if short == err.Error() {
		t.Error("Short did not append anything beyond the bare message")
	}
}

func TestLongIncludesFullStackAndRelated(t *testing.T) {
	var primary = New("primary")
	var secondary = New("secondary")
	var combined = AppendError(primary, secondary)

	var long = Long(combined)
	if !strings.Contains(long, "primary") {
		t.Errorf("Long = %q, missing primary message", long)
	}
	if !strings.Contains(long, "secondary") {
		t.Errorf("Long = %q, missing related error", long)
	}
}

func TestShortNilError(t *testing.T) {
	if got := Short(nil); got != "OK" {
		t.Errorf("Short(nil) = %q, want %q", got, "OK")
	}
}
