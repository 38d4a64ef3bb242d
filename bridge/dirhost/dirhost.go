// Package dirhost implements bridge.Host over a local directory tree.
//
// It behaves like a content provider: handles are granted for any path whose
// parent directory exists, even when the target itself does not, and opening
// such a missing target for reading yields a descriptor to the parent
// directory whose reads fail.
package dirhost

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/jmgilman/go/vfs/bridge"
	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/stream"
)

// Host serves the tree below a root directory.
type Host struct {
	root     string
	live     atomic.Int64
	resolves atomic.Int64
}

// New returns a Host rooted at root.
func New(root string) *Host {
	return &Host{root: root}
}

// Root returns the directory served by the host.
func (h *Host) Root() string {
	return h.root
}

// LiveStrings returns the number of host strings handed out and not yet
// released.
func (h *Host) LiveStrings() int64 {
	return h.live.Load()
}

// Resolves returns the number of ResolveHandle calls made so far.
func (h *Host) Resolves() int64 {
	return h.resolves.Load()
}

// ResolveHandle implements bridge.Host. Paths are taken relative to the
// root and cannot leave it.
func (h *Host) ResolveHandle(path string) bridge.Handle {
	h.resolves.Add(1)

	rel := core.Combine("", path)
	full := filepath.Join(h.root, filepath.FromSlash(rel))
	parent := filepath.Dir(full)
	if rel == "" {
		parent = full
	}
	info, err := os.Stat(parent)
	if err != nil || !info.IsDir() {
		return nil
	}
	return &handle{host: h, path: full, parent: parent}
}

type handle struct {
	host   *Host
	path   string
	parent string
}

func (d *handle) stat() os.FileInfo {
	info, err := os.Stat(d.path)
	if err != nil {
		return nil
	}
	return info
}

func (d *handle) IsFile() bool {
	info := d.stat()
	return info != nil && info.Mode().IsRegular()
}

func (d *handle) IsDirectory() bool {
	info := d.stat()
	return info != nil && info.IsDir()
}

func (d *handle) Exists() bool {
	return d.stat() != nil
}

func (d *handle) Size() int64 {
	info := d.stat()
	if info == nil {
		return -1
	}
	return info.Size()
}

func (d *handle) OpenForRead() (stream.Descriptor, error) {
	f, err := os.Open(d.path)
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	return os.Open(d.parent)
}

func (d *handle) OpenForWrite(appendMode bool) (stream.Descriptor, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.OpenFile(d.path, flags, 0o600)
}

func (d *handle) ListDirectory() (bridge.Listing, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeBridge, "list directory")
	}
	return &listing{host: d.host, entries: entries}, nil
}

type listing struct {
	host    *Host
	entries []os.DirEntry
}

func (l *listing) Len() int {
	return len(l.entries)
}

func (l *listing) Name(i int) bridge.HostString {
	l.host.live.Add(1)
	return &hostString{host: l.host, value: l.entries[i].Name()}
}

func (l *listing) IsDirectory(i int) bool {
	return l.entries[i].IsDir()
}

type hostString struct {
	host     *Host
	value    string
	released bool
}

func (s *hostString) Value() string {
	return s.value
}

func (s *hostString) Release() {
	if !s.released {
		s.released = true
		s.host.live.Add(-1)
	}
}

var _ bridge.Host = (*Host)(nil)
