package bridge

import (
	stderrors "errors"
	"io"
	"log/slog"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/stream"
)

// ProbeSize is the size of the probe read made when opening for reading.
const ProbeSize = stream.DefaultBufferSize

// Option configures a bridge backend.
type Option func(*config)

type config struct {
	logger *slog.Logger
	parent core.View
}

// WithLogger sets the logger for host failures.
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

// FS is a backend whose storage lives behind a Host.
type FS struct {
	core.Base
	host   Host
	logger *slog.Logger
}

// New returns a backend that resolves paths below base through host.
func New(host Host, base string, opts ...Option) *FS {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	return &FS{
		Base:   core.NewBase(core.Normalize(base), c.parent),
		host:   host,
		logger: logging.OrNop(c.logger),
	}
}

// handle performs the single host round trip of an operation.
func (b *FS) handle(path string) (Handle, string) {
	full := b.Abs(path)
	return b.host.ResolveHandle(full), full
}

// IsFile implements core.Backend.
func (b *FS) IsFile(path string) bool {
	h, _ := b.handle(path)
	return h != nil && h.IsFile()
}

// IsDirectory implements core.Backend. Hosts have no symlinks, so
// followSymlinks is ignored.
func (b *FS) IsDirectory(path string, _ bool) bool {
	h, _ := b.handle(path)
	return h != nil && h.IsDirectory()
}

// Exists implements core.Backend.
func (b *FS) Exists(path string) bool {
	h, _ := b.handle(path)
	return h != nil && h.Exists()
}

// Filesize implements core.Backend.
func (b *FS) Filesize(path string) int64 {
	h, _ := b.handle(path)
	if h == nil {
		return -1
	}
	return h.Size()
}

// CreateInputBuffer opens path for reading with one probe read.
func (b *FS) CreateInputBuffer(path string) (stream.Buffer, error) {
	h, full := b.handle(path)
	if h == nil {
		return nil, notFound(full)
	}

	fd, err := h.OpenForRead()
	if err != nil || fd == nil {
		b.logger.Debug("open for reading failed", "path", full, "error", err)
		return nil, bridgeError(err, "open for reading failed", full)
	}

	probe := make([]byte, ProbeSize)
	n, err := fd.Read(probe)
	if err != nil && !stderrors.Is(err, io.EOF) {
		b.logger.Debug("read failed", "path", full, "error", err)
		_ = fd.Close()
		return nil, errors.WrapWithContext(err, errors.CodeNotFound, "probe read failed", map[string]interface{}{"path": full})
	}

	return stream.NewFdReader(fd,
		stream.WithBufferSize(ProbeSize),
		stream.WithPrefetch(probe[:n]),
		stream.WithLogger(b.logger),
	), nil
}

// CreateOutputBuffer opens path for writing. The append intent is passed
// to the host.
func (b *FS) CreateOutputBuffer(path string, mode core.OpenMode) (stream.Buffer, error) {
	h, full := b.handle(path)
	if h == nil {
		return nil, notFound(full)
	}

	fd, err := h.OpenForWrite(mode.Append())
	if err != nil || fd == nil {
		b.logger.Debug("open for writing failed", "path", full, "error", err)
		return nil, bridgeError(err, "open for writing failed", full)
	}
	return stream.NewFdWriter(fd, stream.WithLogger(b.logger)), nil
}

// ReadDirectory implements core.Backend. Every host string is released as
// soon as its value is copied.
func (b *FS) ReadDirectory(path string) ([]core.DirectoryEntry, error) {
	h, full := b.handle(path)
	if h == nil {
		return nil, notFound(full)
	}

	listing, err := h.ListDirectory()
	if err != nil || listing == nil {
		b.logger.Debug("listing failed", "path", full, "error", err)
		return nil, bridgeError(err, "listing failed", full)
	}

	n := listing.Len()
	entries := make([]core.DirectoryEntry, 0, n)
	for i := 0; i < n; i++ {
		s := listing.Name(i)
		name := s.Value()
		s.Release()

		typ := core.FileTypeRegular
		if listing.IsDirectory(i) {
			typ = core.FileTypeDirectory
		}
		entries = append(entries, core.DirectoryEntry{Name: name, Type: typ})
	}
	return entries, nil
}

// MakeDirectory is not offered by hosts.
func (b *FS) MakeDirectory(string, bool) bool {
	return false
}

// IsFeatureSupported advertises FeatureWrite only.
func (b *FS) IsFeatureSupported(f core.Feature) bool {
	return f == core.FeatureWrite
}

// Describe implements core.Backend.
func (b *FS) Describe() string {
	return "[Bridge] " + b.Path()
}

func notFound(path string) error {
	return errors.WithContext(errors.New(errors.CodeNotFound, "no handle for path"), "path", path)
}

func bridgeError(err error, msg, path string) error {
	if err == nil {
		return errors.WithContext(errors.New(errors.CodeBridge, msg), "path", path)
	}
	return errors.WrapWithContext(err, errors.CodeBridge, msg, map[string]interface{}{"path": path})
}

var _ core.Backend = (*FS)(nil)
