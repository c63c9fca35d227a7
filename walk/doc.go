/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package walk performs recursive directory traversal that reads
// directories in parallel across a worker pool while streaming entries
// to the consumer in deterministic, depth-first order.
//
// A [Walker] is assembled with [New] and a chain of [Option] values,
// then started with [Walker.Iterator] to obtain a blocking, single-
// consumer [Iterator]. Directories are read concurrently; the iterator
// reassembles the parallel results into the same order a classical
// single-threaded walker would produce.
//
// Usage:
//
//	var it = walk.New[struct{}]("/some/dir", walk.Sorted[struct{}]()).Iterator()
//	defer it.Cancel()
//	for {
//	  var entry, ok = it.Next()
//	  if !ok {
//	    break
//	  }
//	  println(entry.Name)
//	}
package walk
