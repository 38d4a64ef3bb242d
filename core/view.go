package core

import (
	"cmp"
	"slices"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/stream"
)

// View scopes operations on a Backend to a sub-path.
//
// View is a small value type: copying it is cheap and never copies the
// backend. The zero View is invalid and answers every query with the
// missing sentinel.
type View struct {
	fs  Backend
	sub string
}

// NewView returns a view of the backend's root.
func NewView(fs Backend) View {
	return View{fs: fs}
}

// Valid reports whether the view refers to a backend.
func (v View) Valid() bool {
	return v.fs != nil
}

// Backend returns the backend, or nil for the zero View.
func (v View) Backend() Backend {
	return v.fs
}

// SubPath returns the view's path relative to the backend.
func (v View) SubPath() string {
	return v.sub
}

// FullPath returns the backend base path combined with the sub-path.
func (v View) FullPath() string {
	if v.fs == nil {
		return ""
	}
	return Combine(v.fs.Path(), v.sub)
}

// Subtree returns a view scoped to sub below this view.
func (v View) Subtree(sub string) View {
	return View{fs: v.fs, sub: Combine(v.sub, sub)}
}

func (v View) resolve(path string) string {
	return Combine(v.sub, path)
}

// IsFile reports whether path is a regular file.
func (v View) IsFile(path string) bool {
	return v.fs != nil && v.fs.IsFile(v.resolve(path))
}

// IsDirectory reports whether path is a directory.
func (v View) IsDirectory(path string, followSymlinks bool) bool {
	return v.fs != nil && v.fs.IsDirectory(v.resolve(path), followSymlinks)
}

// Exists reports whether path resolves to anything.
func (v View) Exists(path string) bool {
	return v.fs != nil && v.fs.Exists(v.resolve(path))
}

// Filesize returns the size of path, or -1.
func (v View) Filesize(path string) int64 {
	if v.fs == nil {
		return -1
	}
	return v.fs.Filesize(v.resolve(path))
}

// MakeDirectory creates path and any missing parents.
func (v View) MakeDirectory(path string, followSymlinks bool) bool {
	if v.fs == nil || !v.fs.IsFeatureSupported(FeatureWrite) {
		return false
	}
	return v.fs.MakeDirectory(v.resolve(path), followSymlinks)
}

// IsFeatureSupported reports whether the backend advertises f.
func (v View) IsFeatureSupported(f Feature) bool {
	return v.fs != nil && v.fs.IsFeatureSupported(f)
}

// OpenInputStream opens name for reading.
func (v View) OpenInputStream(name string) (*stream.InputStream, error) {
	if v.fs == nil {
		return nil, errors.New(errors.CodeNotFound, "invalid view")
	}
	path := v.resolve(name)
	buf, err := v.fs.CreateInputBuffer(path)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	if buf == nil {
		return nil, errors.WithContext(errors.New(errors.CodeNotFound, "open failed"), "path", path)
	}
	return stream.NewInputStream(buf, Combine(v.FullPath(), name)), nil
}

// OpenOutputStream opens name for writing. A zero mode truncates.
func (v View) OpenOutputStream(name string, mode OpenMode) (*stream.OutputStream, error) {
	if v.fs == nil {
		return nil, errors.New(errors.CodeNotFound, "invalid view")
	}
	if !v.fs.IsFeatureSupported(FeatureWrite) {
		return nil, errors.Newf(errors.CodeUnsupported, "%s is read-only", v.fs.Describe())
	}
	if mode == 0 {
		mode = DefaultWriteMode
	}
	path := v.resolve(name)
	buf, err := v.fs.CreateOutputBuffer(path, mode|ModeWrite)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	if buf == nil {
		return nil, errors.WithContext(errors.New(errors.CodeNotFound, "open failed"), "path", path)
	}
	return stream.NewOutputStream(buf, Combine(v.FullPath(), name)), nil
}

// ListDirectory enumerates path sorted by name.
func (v View) ListDirectory(path string) ([]DirectoryEntry, error) {
	if v.fs == nil {
		return nil, errors.New(errors.CodeNotFound, "invalid view")
	}
	entries, err := v.fs.ReadDirectory(v.resolve(path))
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []DirectoryEntry{}
	}
	slices.SortFunc(entries, func(a, b DirectoryEntry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return entries, nil
}

// Describe returns a human-readable description of the view.
func (v View) Describe() string {
	if v.fs == nil {
		return "[Invalid]"
	}
	if v.sub == "" {
		return v.fs.Describe()
	}
	return v.fs.Describe() + " " + v.sub
}

// String implements fmt.Stringer.
func (v View) String() string {
	return v.Describe()
}
