package billy

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/stream"
)

// FS adapts a billy.Filesystem to core.Backend.
type FS struct {
	core.Base
	bfs        billy.Filesystem
	kind       string
	readOnly   bool
	bufferSize int
	logger     *slog.Logger
}

// Option configures backend creation.
type Option func(*config)

type config struct {
	readOnly   bool
	bufferSize int
	logger     *slog.Logger
	parent     core.View
}

// WithReadOnly disables every write capability.
func WithReadOnly() Option {
	return func(c *config) {
		c.readOnly = true
	}
}

// WithBufferSize sets the capacity of stream buffers.
func WithBufferSize(size int) Option {
	return func(c *config) {
		c.bufferSize = size
	}
}

// WithLogger sets the logger for open and enumeration failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithParent records the view this backend was created from.
func WithParent(parent core.View) Option {
	return func(c *config) {
		c.parent = parent
	}
}

// New returns a backend over bfs rooted at base.
func New(bfs billy.Filesystem, base string, opts ...Option) *FS {
	return newFS(bfs, "Billy", base, opts)
}

// NewMemory returns a backend over a new, empty in-memory filesystem.
func NewMemory(opts ...Option) *FS {
	return newFS(memfs.New(), "Memory", "", opts)
}

// NewLocal returns a backend over the disk tree below root. Paths cannot
// leave root.
func NewLocal(root string, opts ...Option) *FS {
	return newFS(osfs.New(root, osfs.WithBoundOS()), "Local", "", opts)
}

func newFS(bfs billy.Filesystem, kind, base string, opts []Option) *FS {
	c := config{bufferSize: stream.DefaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	return &FS{
		Base:       core.NewBase(core.Normalize(base), c.parent),
		bfs:        bfs,
		kind:       kind,
		readOnly:   c.readOnly,
		bufferSize: c.bufferSize,
		logger:     logging.OrNop(c.logger),
	}
}

// Unwrap returns the underlying billy.Filesystem.
func (b *FS) Unwrap() billy.Filesystem {
	return b.bfs
}

// name maps an operation path to a billy path.
func (b *FS) name(path string) string {
	p := b.Abs(path)
	if p == "" {
		return "/"
	}
	return p
}

func (b *FS) stat(name string, followSymlinks bool) (fs.FileInfo, error) {
	if followSymlinks {
		return b.bfs.Stat(name)
	}
	return b.bfs.Lstat(name)
}

// IsFile implements core.Backend.
func (b *FS) IsFile(path string) bool {
	info, err := b.bfs.Stat(b.name(path))
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory implements core.Backend.
func (b *FS) IsDirectory(path string, followSymlinks bool) bool {
	info, err := b.stat(b.name(path), followSymlinks)
	return err == nil && info.IsDir()
}

// Exists implements core.Backend.
func (b *FS) Exists(path string) bool {
	_, err := b.bfs.Stat(b.name(path))
	return err == nil
}

// Filesize implements core.Backend.
func (b *FS) Filesize(path string) int64 {
	info, err := b.bfs.Stat(b.name(path))
	if err != nil {
		return -1
	}
	return info.Size()
}

func (b *FS) streamOptions() []stream.Option {
	return []stream.Option{
		stream.WithBufferSize(b.bufferSize),
		stream.WithLogger(b.logger),
	}
}

// CreateInputBuffer implements core.Backend.
func (b *FS) CreateInputBuffer(path string) (stream.Buffer, error) {
	name := b.name(path)
	if info, err := b.bfs.Stat(name); err == nil && info.IsDir() {
		return nil, errors.WithContext(errors.New(errors.CodeInvalidInput, "is a directory"), "path", name)
	}
	f, err := b.bfs.Open(name)
	if err != nil {
		b.logger.Debug("open for reading failed", "path", name, "error", err)
		return nil, translate(err, "open", name)
	}
	return stream.NewFdReader(newFile(f, b.bfs, name), b.streamOptions()...), nil
}

// CreateOutputBuffer implements core.Backend.
func (b *FS) CreateOutputBuffer(path string, mode core.OpenMode) (stream.Buffer, error) {
	name := b.name(path)
	if b.readOnly {
		return nil, errors.WithContext(errors.New(errors.CodeUnsupported, "backend is read-only"), "path", name)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if mode.Append() {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	f, err := b.bfs.OpenFile(name, flags, 0o600)
	if err != nil {
		b.logger.Debug("open for writing failed", "path", name, "error", err)
		return nil, translate(err, "create", name)
	}
	return stream.NewFdWriter(newFile(f, b.bfs, name), b.streamOptions()...), nil
}

// ReadDirectory implements core.Backend. Symlinks are classified by their
// target.
func (b *FS) ReadDirectory(path string) ([]core.DirectoryEntry, error) {
	name := b.name(path)
	info, err := b.bfs.Stat(name)
	if name == "/" && errors.Is(err, fs.ErrNotExist) {
		// memfs has no root entry until something is created
		return []core.DirectoryEntry{}, nil
	}
	if err != nil || !info.IsDir() {
		if err == nil {
			err = errors.New(errors.CodeInvalidInput, "not a directory")
		}
		return nil, translate(err, "readdir", name)
	}

	infos, err := b.bfs.ReadDir(name)
	if err != nil {
		b.logger.Debug("error opening directory", "path", name, "error", err)
		return nil, translate(err, "readdir", name)
	}

	entries := make([]core.DirectoryEntry, 0, len(infos))
	for _, info := range infos {
		typ := core.FileTypeRegular
		switch {
		case info.IsDir():
			typ = core.FileTypeDirectory
		case info.Mode()&fs.ModeSymlink != 0:
			if target, err := b.bfs.Stat(b.bfs.Join(name, info.Name())); err == nil && target.IsDir() {
				typ = core.FileTypeDirectory
			}
		}
		entries = append(entries, core.DirectoryEntry{Name: info.Name(), Type: typ})
	}
	return entries, nil
}

// MakeDirectory implements core.Backend.
func (b *FS) MakeDirectory(path string, followSymlinks bool) bool {
	if b.readOnly {
		return false
	}
	name := b.name(path)
	if info, err := b.stat(name, followSymlinks); err == nil {
		return info.IsDir()
	}
	if err := b.bfs.MkdirAll(name, 0o755); err != nil {
		b.logger.Debug("mkdir failed", "path", name, "error", err)
		return false
	}
	return true
}

// IsFeatureSupported advertises FeatureWrite and FeatureMakeDirectory unless
// the backend is read-only.
func (b *FS) IsFeatureSupported(f core.Feature) bool {
	if b.readOnly {
		return false
	}
	return f == core.FeatureWrite || f == core.FeatureMakeDirectory
}

// Describe implements core.Backend.
func (b *FS) Describe() string {
	desc := "[" + b.kind + "]"
	if root := b.bfs.Root(); root != "" && root != "/" {
		desc += " " + root
	}
	if b.Path() != "" {
		desc += " " + b.Path()
	}
	return desc
}

func translate(err error, op, name string) error {
	if errors.GetCode(err) != errors.CodeUnknown {
		return errors.WithContext(err, "path", name)
	}
	code := errors.CodeIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = errors.CodeNotFound
	case errors.Is(err, fs.ErrExist):
		code = errors.CodeAlreadyExists
	}
	return errors.WrapWithContext(err, code, op+" failed", map[string]interface{}{"path": name})
}

var _ core.Backend = (*FS)(nil)
