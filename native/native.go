package native

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/stream"
)

// Option configures a native backend.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	bufferSize int
	parent     core.View
}

// WithLogger sets the logger for open and enumeration failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithBufferSize sets the capacity of stream buffers.
func WithBufferSize(size int) Option {
	return func(c *config) {
		c.bufferSize = size
	}
}

// WithParent records the view this backend was created from.
func WithParent(parent core.View) Option {
	return func(c *config) {
		c.parent = parent
	}
}

// FS is a backend rooted at a directory of the host filesystem.
type FS struct {
	core.Base
	logger     *slog.Logger
	bufferSize int
}

// New returns a backend rooted at path. The path is not checked.
func New(path string, opts ...Option) *FS {
	c := config{bufferSize: stream.DefaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	return &FS{
		Base:       core.NewBase(core.Normalize(path), c.parent),
		logger:     logging.OrNop(c.logger),
		bufferSize: c.bufferSize,
	}
}

func (n *FS) streamOptions() []stream.Option {
	return []stream.Option{
		stream.WithBufferSize(n.bufferSize),
		stream.WithLogger(n.logger),
	}
}

// IsFile reports whether path is a regular file. Symlinks are followed.
func (n *FS) IsFile(path string) bool {
	info, err := os.Stat(n.Abs(path))
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether path is a directory.
func (n *FS) IsDirectory(path string, followSymlinks bool) bool {
	info, err := stat(n.Abs(path), followSymlinks)
	return err == nil && info.IsDir()
}

// Exists reports whether path resolves to anything.
func (n *FS) Exists(path string) bool {
	_, err := os.Stat(n.Abs(path))
	return err == nil
}

// Filesize returns the size of the file at path, or -1.
func (n *FS) Filesize(path string) int64 {
	info, err := os.Stat(n.Abs(path))
	if err != nil {
		return -1
	}
	return info.Size()
}

// CreateInputBuffer opens path read-only.
func (n *FS) CreateInputBuffer(path string) (stream.Buffer, error) {
	full := n.Abs(path)
	fd, err := openRead(full)
	if err != nil {
		n.logger.Debug("open for reading failed", "path", full, "error", err)
		return nil, translate(err, "open", full)
	}
	return stream.NewFdReader(fd, n.streamOptions()...), nil
}

// CreateOutputBuffer opens path for writing. The file is created with mode
// 0600 when missing; existing content is kept when mode asks for appending
// and discarded otherwise.
func (n *FS) CreateOutputBuffer(path string, mode core.OpenMode) (stream.Buffer, error) {
	full := n.Abs(path)
	fd, err := openWrite(full, mode.Append())
	if err != nil {
		n.logger.Debug("open for writing failed", "path", full, "error", err)
		return nil, translate(err, "create", full)
	}
	return stream.NewFdWriter(fd, n.streamOptions()...), nil
}

// ReadDirectory enumerates path. Entries whose type the directory listing
// does not settle are classified by following them.
func (n *FS) ReadDirectory(path string) ([]core.DirectoryEntry, error) {
	full := n.Abs(path)
	dirEntries, err := os.ReadDir(full)
	if err != nil {
		n.logger.Debug("error opening directory", "path", full, "error", err)
		return nil, translate(err, "readdir", full)
	}

	entries := make([]core.DirectoryEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if name == "." || name == ".." {
			continue
		}

		typ := core.FileTypeRegular
		switch {
		case de.IsDir():
			typ = core.FileTypeDirectory
		case de.Type()&(fs.ModeSymlink|fs.ModeIrregular) != 0:
			if info, err := os.Stat(core.Combine(full, name)); err == nil && info.IsDir() {
				typ = core.FileTypeDirectory
			}
		}
		entries = append(entries, core.DirectoryEntry{Name: name, Type: typ})
	}
	return entries, nil
}

// MakeDirectory creates path and any missing parents with mode 0777 before
// umask.
func (n *FS) MakeDirectory(path string, followSymlinks bool) bool {
	full := n.Abs(path)
	if info, err := stat(full, followSymlinks); err == nil {
		return info.IsDir()
	}
	if err := os.MkdirAll(full, 0o777); err != nil {
		n.logger.Debug("mkdir failed", "path", full, "error", err)
		return false
	}
	return true
}

// IsFeatureSupported advertises FeatureWrite only.
func (n *FS) IsFeatureSupported(f core.Feature) bool {
	return f == core.FeatureWrite
}

// Describe implements core.Backend.
func (n *FS) Describe() string {
	return "[Native] " + n.Path()
}

func stat(path string, followSymlinks bool) (fs.FileInfo, error) {
	if followSymlinks {
		return os.Stat(path)
	}
	return os.Lstat(path)
}

func translate(err error, op, path string) error {
	code := errors.CodeIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = errors.CodeNotFound
	case errors.Is(err, fs.ErrExist):
		code = errors.CodeAlreadyExists
	}
	return errors.WrapWithContext(err, code, op+" failed", map[string]interface{}{"path": path})
}

var _ core.Backend = (*FS)(nil)
