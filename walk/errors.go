/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import "github.com/haraldrudell/parwalk/perrors"

// ErrPoolBusy is returned by fallible iterator construction, or surfaced
// as the sole entry of an infallible iterator, when an existing pool does
// not start a no-op probe job within its configured busy-timeout
var ErrPoolBusy = perrors.New("walk: pool busy")
