package billy

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/vfs/stream"
)

// file adapts billy.File to stream.Descriptor.
// It keeps the name given to Open since billy.File.Name() may return
// different formats depending on the backend.
type file struct {
	f    billy.File
	fs   billy.Basic
	name string
}

func newFile(f billy.File, bfs billy.Basic, name string) *file {
	return &file{f: f, fs: bfs, name: name}
}

func (f *file) Read(p []byte) (int, error) {
	return f.f.Read(p)
}

func (f *file) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

func (f *file) Seek(offset int64, whence int) (int64, error) {
	return f.f.Seek(offset, whence)
}

// Close syncs backends that support it before closing. For backends without
// Sync (e.g., memfs), only the close happens.
func (f *file) Close() error {
	var syncErr error
	if syncer, ok := f.f.(interface{ Sync() error }); ok {
		syncErr = syncer.Sync()
	}
	if err := f.f.Close(); err != nil {
		return err
	}
	return syncErr
}

// Stat returns file metadata. billy.File has no Stat, so the filesystem is
// asked.
func (f *file) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name passed to Open.
func (f *file) Name() string {
	return f.name
}

var _ stream.Descriptor = (*file)(nil)
