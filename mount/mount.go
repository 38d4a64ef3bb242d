package mount

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/vfs/billy"
	"github.com/jmgilman/go/vfs/bridge"
	"github.com/jmgilman/go/vfs/bridge/dirhost"
	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/hook"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/native"
)

// Option configures Mount.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger handed to every backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Table maps mount names to views.
type Table struct {
	names []string
	views map[string]core.View
}

// Mount builds one backend per mount entry of cfg.
func Mount(cfg *Config, opts ...Option) (*Table, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrNop(o.logger)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	bufferSize := settings.BufferSize.Get()

	t := &Table{views: make(map[string]core.View, len(cfg.Mounts))}
	for _, m := range cfg.Mounts {
		view, err := mountOne(m, bufferSize, logger)
		if err != nil {
			return nil, errors.WithContext(err, "mount", m.Name)
		}
		logger.Debug("mounted", "name", m.Name, "view", view.Describe())
		t.names = append(t.names, m.Name)
		t.views[m.Name] = view
	}
	return t, nil
}

func mountOne(m MountConfig, bufferSize int, logger *slog.Logger) (core.View, error) {
	kind, err := m.Kind()
	if err != nil {
		return core.View{}, err
	}

	var backend core.Backend
	switch kind {
	case BackendNative:
		backend = native.New(m.Root, native.WithBufferSize(bufferSize), native.WithLogger(logger))
	case BackendLocal:
		backend = billy.NewLocal(m.Root, billyOptions(m, bufferSize, logger)...)
	case BackendMemory:
		mem := billy.NewMemory(billyOptions(m, bufferSize, logger)...)
		if m.Root != "" {
			if err := preload(mem, m.Root); err != nil {
				return core.View{}, err
			}
		}
		backend = mem
	case BackendBridge:
		backend = bridge.New(dirhost.New(m.Root), "", bridge.WithLogger(logger))
	}

	view := core.NewView(backend)
	if mode, _ := m.HookMode(); mode == HookAuto {
		view = hook.Detect(view, hook.WithLogger(logger))
	}
	return view, nil
}

func billyOptions(m MountConfig, bufferSize int, logger *slog.Logger) []billy.Option {
	opts := []billy.Option{billy.WithBufferSize(bufferSize), billy.WithLogger(logger)}
	if m.ReadOnly {
		opts = append(opts, billy.WithReadOnly())
	}
	return opts
}

// preload copies the host tree below root into a memory backend.
func preload(mem *billy.FS, root string) error {
	bfs := mem.Unwrap()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if name == "." {
			return nil
		}
		if d.IsDir() {
			return bfs.MkdirAll(name, 0o755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return util.WriteFile(bfs, name, data, 0o644)
	})
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeIO, "preload memory mount", map[string]interface{}{"root": root})
	}
	return nil
}

// Names returns the mount names in configuration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// View returns the view of the named mount.
func (t *Table) View(name string) (core.View, bool) {
	v, ok := t.views[name]
	return v, ok
}

// Resolve splits a "name:path" reference and returns the mount's view and
// the path inside it. A reference without a colon addresses the first
// mount.
func (t *Table) Resolve(ref string) (core.View, string, error) {
	name, path, found := strings.Cut(ref, ":")
	if !found {
		if len(t.names) == 0 {
			return core.View{}, "", errors.New(errors.CodeNotFound, "no mounts configured")
		}
		name, path = t.names[0], ref
	}
	v, ok := t.views[name]
	if !ok {
		return core.View{}, "", errors.WithContext(errors.New(errors.CodeNotFound, "unknown mount"), "name", name)
	}
	return v, core.Normalize(path), nil
}
