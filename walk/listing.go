/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

import "os"

// pathSeparator is the platform path separator
const pathSeparator = os.PathSeparator

// listing is the ephemeral output of one read-directory task: the
// post-callback, post-sort, post-filter sequence of entries, paired with
// the child tree node allocated for each entry that will be descended into
//   - children[i] is non-nil iff entries[i] is a directory (or followed
//     symlink) scheduled for a recursive read
//   - a listing is referenced by exactly one tree node and is released at
//     retirement
type listing[S any] struct {
	entries  []*Entry[S]
	children []*node[S]
}
