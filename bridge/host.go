package bridge

import "github.com/jmgilman/go/vfs/stream"

// Host resolves paths to handles. It is the only way the backend reaches
// storage.
type Host interface {
	// ResolveHandle returns the handle for path, or nil when nothing is
	// there.
	ResolveHandle(path string) Handle
}

// Handle is an opaque reference to one host object.
type Handle interface {
	IsFile() bool
	IsDirectory() bool
	Exists() bool
	Size() int64

	// OpenForRead returns a descriptor positioned at the start of the
	// object. Hosts may hand out a descriptor for a target that is not a
	// readable file; reading from it then fails.
	OpenForRead() (stream.Descriptor, error)

	// OpenForWrite returns a write descriptor. With append set existing
	// content is kept, otherwise it is truncated.
	OpenForWrite(append bool) (stream.Descriptor, error)

	// ListDirectory returns the children of a directory object.
	ListDirectory() (Listing, error)
}

// Listing is a directory listing produced by the host: parallel sequences
// of names and directory flags.
type Listing interface {
	Len() int
	// Name returns a host-owned string. The caller releases it.
	Name(i int) HostString
	IsDirectory(i int) bool
}

// HostString is a string value held by the host until released.
type HostString interface {
	Value() string
	Release()
}
