/*
© 2025–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

package walk

// FileType classifies a directory entry using the information readdir
// provides without an additional stat call
type FileType uint8

const (
	// TypeUnknown means the platform did not provide a type at readdir time
	TypeUnknown FileType = iota
	// TypeRegular is a plain file
	TypeRegular
	// TypeDirectory is a directory
	TypeDirectory
	// TypeSymlink is a symbolic link
	TypeSymlink
	// TypeOther is a device, pipe, socket or similar special file
	TypeOther
)

func (t FileType) String() (s string) {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeOther:
		return "other"
	default:
		return "unknown"
	}
}

// ParentPath is an interned, shared handle to a directory's path so that
// every child entry of that directory references the same allocation
type ParentPath struct {
	// Abs is the path of the directory, as provided or made absolute
	// depending on the root path given to the walk
	Abs string
}

// Entry is a snapshot of one directory child, created once by the
// read-directory task that enumerated it
//   - after publication, the only field that changes is ReadChildrenError,
//     which the iterator sets when the read of this entry's directory fails
//   - the synthetic root entry carries the walk's initial state, real
//     entries carry the state snapshot of the directory that produced them;
//     the pool-busy entry of a failed iterator carries the zero value of S
type Entry[S any] struct {
	// Name is the raw directory-entry name, never containing a path
	// separator; empty for the synthetic entry representing the root and
	// for pseudo-entries that only carry an error
	Name string
	// Depth is 0 for the root, incremented by one per recursion
	Depth int
	// Parent is the interned path handle of the directory this entry
	// belongs to; for the root entry itself it holds the root path
	Parent *ParentPath
	// Type is the entry's file type, as cheaply determined at readdir time
	Type FileType
	// FollowLink is true if this is a symlink eligible for resolution
	// under the walk's follow-links policy
	FollowLink bool
	// SkipChildren, settable by the user callback, prevents descent into
	// this entry even though it would otherwise qualify
	SkipChildren bool
	// ReadChildrenError is set only when a descent into this entry was
	// attempted and failed; the entry is still yielded
	ReadChildrenError error
	// State is the user-state snapshot in effect when this entry's
	// directory was processed
	State S
}

// Abs returns the entry's absolute-or-as-given path, joining Parent and Name
func (e *Entry[S]) Abs() (path string) {
	if e.Parent == nil || e.Parent.Abs == "" {
		return e.Name
	}
	if e.Name == "" {
		return e.Parent.Abs
	}
	return e.Parent.Abs + string(pathSeparator) + e.Name
}

// IsDir returns whether this entry is a directory (not a followed symlink)
func (e *Entry[S]) IsDir() (isDir bool) { return e.Type == TypeDirectory }
