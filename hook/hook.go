package hook

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/stream"
)

// TreeMapName is the map tree file inspected by Detect.
const TreeMapName = "RPG_RT.lmt"

// sacredTearsMagic is the map tree header shifted up by one.
var sacredTearsMagic = [11]byte{0x0b, 'M', 'd', 'g', 'N', 'b', 'q', 'U', 's', 'f', 'f'}

// Hook selects the rewrite applied by an FS.
type Hook int

const (
	// SacredTears shifts every byte of the map tree back by one.
	SacredTears Hook = iota
)

// String returns the game name of the hook.
func (h Hook) String() string {
	switch h {
	case SacredTears:
		return "Sacred Tears"
	default:
		return "unknown"
	}
}

// FS forwards every operation to its parent view and decodes the files the
// active hook covers.
type FS struct {
	core.Base
	hook   Hook
	logger *slog.Logger
}

// Option configures an FS.
type Option func(*FS)

// WithLogger sets the logger used when a hook is detected.
func WithLogger(logger *slog.Logger) Option {
	return func(f *FS) {
		f.logger = logger
	}
}

// New returns a hook backend over parent.
func New(parent core.View, hook Hook, opts ...Option) *FS {
	f := &FS{Base: core.NewBase("", parent), hook: hook}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = logging.OrNop(f.logger)
	return f
}

// Detect inspects the map tree of view and returns a hooked view when the
// game needs one. Otherwise view is returned unchanged.
func Detect(view core.View, opts ...Option) core.View {
	in, err := view.OpenInputStream(TreeMapName)
	if err != nil {
		return view
	}
	defer in.Close()

	var magic [11]byte
	if !stream.ReadIntoObj(in, &magic) || !bytes.Equal(magic[:], sacredTearsMagic[:]) {
		return view
	}

	fs := New(view, SacredTears, opts...)
	fs.logger.Info("game hook detected", "hook", fs.hook.String(), "view", view.Describe())
	return core.NewView(fs)
}

// Hook returns the active hook.
func (f *FS) Hook() Hook {
	return f.hook
}

// IsFile implements core.Backend.
func (f *FS) IsFile(path string) bool {
	return f.Parent().IsFile(path)
}

// IsDirectory implements core.Backend.
func (f *FS) IsDirectory(path string, followSymlinks bool) bool {
	return f.Parent().IsDirectory(path, followSymlinks)
}

// Exists implements core.Backend.
func (f *FS) Exists(path string) bool {
	return f.Parent().Exists(path)
}

// Filesize implements core.Backend.
func (f *FS) Filesize(path string) int64 {
	return f.Parent().Filesize(path)
}

// CreateInputBuffer opens path on the parent and wraps it in a decoder when
// the hook covers the file.
func (f *FS) CreateInputBuffer(path string) (stream.Buffer, error) {
	in, err := f.Parent().OpenInputStream(path)
	if err != nil {
		return nil, err
	}
	buf := in.Detach()

	if f.hook == SacredTears && strings.EqualFold(core.Normalize(path), TreeMapName) {
		return NewCaesarBuffer(buf, 1), nil
	}
	return buf, nil
}

// CreateOutputBuffer forwards to the parent. Written files are not encoded.
func (f *FS) CreateOutputBuffer(path string, mode core.OpenMode) (stream.Buffer, error) {
	out, err := f.Parent().OpenOutputStream(path, mode)
	if err != nil {
		return nil, err
	}
	return out.Detach(), nil
}

// ReadDirectory implements core.Backend.
func (f *FS) ReadDirectory(path string) ([]core.DirectoryEntry, error) {
	return f.Parent().ListDirectory(path)
}

// MakeDirectory implements core.Backend.
func (f *FS) MakeDirectory(path string, followSymlinks bool) bool {
	return f.Parent().MakeDirectory(path, followSymlinks)
}

// IsFeatureSupported reports the parent's capabilities.
func (f *FS) IsFeatureSupported(feat core.Feature) bool {
	return f.Parent().IsFeatureSupported(feat)
}

// Describe implements core.Backend.
func (f *FS) Describe() string {
	return "[Hook] (" + f.hook.String() + ")"
}

var _ core.Backend = (*FS)(nil)
