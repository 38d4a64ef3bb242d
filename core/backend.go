package core

import (
	"github.com/jmgilman/go/vfs/stream"
)

// Backend is a storage provider.
//
// Paths passed to a Backend are already combined with the calling View's
// sub-path; the backend combines them with its own base path. Query methods
// re-resolve the path on every call and answer with false or -1 when it does
// not exist. They never panic and never return errors.
//
// Backends are immutable after construction apart from internal caches, so
// several Views may share one backend.
type Backend interface {
	// Path returns the base path of the backend.
	Path() string

	// Parent returns the view this backend is layered on, or the zero View.
	Parent() View

	// IsFile reports whether path is a regular file.
	IsFile(path string) bool

	// IsDirectory reports whether path is a directory.
	IsDirectory(path string, followSymlinks bool) bool

	// Exists reports whether path resolves to anything.
	Exists(path string) bool

	// Filesize returns the size of path in bytes, or -1.
	Filesize(path string) int64

	// CreateInputBuffer opens path for reading.
	// It returns a nil buffer and an error when the file cannot be opened.
	CreateInputBuffer(path string) (stream.Buffer, error)

	// CreateOutputBuffer opens path for writing with the given mode.
	// It returns a nil buffer and an error when the file cannot be opened.
	CreateOutputBuffer(path string, mode OpenMode) (stream.Buffer, error)

	// ReadDirectory enumerates path. An empty directory yields an empty,
	// non-nil slice and no error. Order is backend-defined.
	ReadDirectory(path string) ([]DirectoryEntry, error)

	// MakeDirectory creates path and any missing parents.
	MakeDirectory(path string, followSymlinks bool) bool

	// IsFeatureSupported reports whether the backend advertises f.
	IsFeatureSupported(f Feature) bool

	// Describe returns a short human-readable description.
	Describe() string
}

// Base carries the state shared by every backend: a base path and an
// optional parent view. Embed it to inherit Path, Parent and a capability
// query that advertises nothing.
type Base struct {
	path   string
	parent View
}

// NewBase returns a Base rooted at path.
func NewBase(path string, parent View) Base {
	return Base{path: path, parent: parent}
}

// Path returns the base path.
func (b Base) Path() string {
	return b.path
}

// Parent returns the parent view.
func (b Base) Parent() View {
	return b.parent
}

// Abs combines the base path with path.
func (b Base) Abs(path string) string {
	return Combine(b.path, path)
}

// IsFeatureSupported advertises nothing.
func (b Base) IsFeatureSupported(Feature) bool {
	return false
}
