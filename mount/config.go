package mount

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/stream"
	"gopkg.in/yaml.v3"
)

// BackendKind selects the storage behind a mount.
type BackendKind int

const (
	// BackendNative serves a host directory directly.
	BackendNative BackendKind = iota
	// BackendMemory serves an in-memory tree, optionally preloaded from a
	// host directory.
	BackendMemory
	// BackendLocal serves a host directory through a chroot.
	BackendLocal
	// BackendBridge serves a host directory through the handle bridge.
	BackendBridge
)

var backendTags = []string{"native", "memory", "local", "bridge"}

// HookMode selects whether game hooks are detected on a mount.
type HookMode int

const (
	// HookNone never applies a hook.
	HookNone HookMode = iota
	// HookAuto applies a hook when Detect recognises the game.
	HookAuto
)

var hookTags = []string{"none", "auto"}

// Buffer size limits.
const (
	MinBufferSize = 512
	MaxBufferSize = 1 << 20
)

// Config is the top-level configuration file.
type Config struct {
	LogLevel   string        `yaml:"log_level"`
	LogFormat  string        `yaml:"log_format,omitempty"`
	BufferSize int           `yaml:"buffer_size,omitempty"`
	Mounts     []MountConfig `yaml:"mounts"`
}

// MountConfig describes one mount.
type MountConfig struct {
	Name     string `yaml:"name"`
	Backend  string `yaml:"backend"`
	Root     string `yaml:"root,omitempty"`
	Hook     string `yaml:"hook,omitempty"`
	ReadOnly bool   `yaml:"read_only,omitempty"`
}

// Default returns a configuration without mounts.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		LogFormat:  string(logging.FormatText),
		BufferSize: stream.DefaultBufferSize,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithContext(err, errors.CodeNotFound, "config file not found", map[string]interface{}{"path": path})
		}
		return nil, errors.Wrap(err, errors.CodeIO, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "marshal config")
	}
	return data, nil
}

// Settings holds the validated, typed form of a Config.
type Settings struct {
	LogLevel   *EnumParam[logLevel]
	LogFormat  *EnumParam[logFormat]
	BufferSize *RangeParam[int]
}

type logLevel int

type logFormat int

var (
	logLevelTags  = []string{"debug", "info", "warn", "error"}
	logFormatTags = []string{string(logging.FormatText), string(logging.FormatJSON)}
)

// NewSettings returns settings with default values.
func NewSettings() *Settings {
	return &Settings{
		LogLevel:   NewEnumParam[logLevel]("Log level", "Minimum level of log records", 1, logLevelTags),
		LogFormat:  NewEnumParam[logFormat]("Log format", "Encoding of log records", 0, logFormatTags),
		BufferSize: NewRangeParam("Buffer size", "Capacity of descriptor stream buffers", stream.DefaultBufferSize, MinBufferSize, MaxBufferSize),
	}
}

// Settings validates the global values of c into typed settings.
func (c *Config) Settings() (*Settings, error) {
	s := NewSettings()
	if c.LogLevel != "" && !s.LogLevel.SetFromString(c.LogLevel) {
		return nil, invalid("log_level", c.LogLevel, "expected one of %v", logLevelTags)
	}
	if c.LogFormat != "" && !s.LogFormat.SetFromString(c.LogFormat) {
		return nil, invalid("log_format", c.LogFormat, "expected one of %v", logFormatTags)
	}
	if c.BufferSize != 0 && !s.BufferSize.Set(c.BufferSize) {
		return nil, invalid("buffer_size", c.BufferSize, "expected %d..%d", s.BufferSize.Min(), s.BufferSize.Max())
	}
	return s, nil
}

// Logger builds the logger described by the settings.
func (s *Settings) Logger(out io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(s.LogLevel.Tag())
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "log level")
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(s.LogFormat.Tag()),
		Output: out,
	}), nil
}

// Validate checks every global value and mount entry.
func (c *Config) Validate() error {
	if _, err := c.Settings(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Mounts))
	for i := range c.Mounts {
		m := &c.Mounts[i]
		if err := m.validate(); err != nil {
			return errors.WithContext(err, "mount", i)
		}
		if seen[m.Name] {
			return invalid("mounts.name", m.Name, "duplicate mount name")
		}
		seen[m.Name] = true
	}
	return nil
}

// Kind returns the parsed backend kind.
func (m MountConfig) Kind() (BackendKind, error) {
	p := NewEnumParam[BackendKind]("Backend", "Storage behind the mount", BackendNative, backendTags)
	if !p.SetFromString(m.Backend) {
		return 0, invalid("backend", m.Backend, "expected one of %v", backendTags)
	}
	return p.Get(), nil
}

// HookMode returns the parsed hook mode. An empty value means none.
func (m MountConfig) HookMode() (HookMode, error) {
	p := NewEnumParam[HookMode]("Hook", "Game hook detection", HookNone, hookTags)
	if m.Hook != "" && !p.SetFromString(m.Hook) {
		return 0, invalid("hook", m.Hook, "expected one of %v", hookTags)
	}
	return p.Get(), nil
}

func (m MountConfig) validate() error {
	if m.Name == "" {
		return invalid("name", m.Name, "mount name is required")
	}
	kind, err := m.Kind()
	if err != nil {
		return err
	}
	if _, err := m.HookMode(); err != nil {
		return err
	}
	if m.Root == "" && kind != BackendMemory {
		return invalid("root", m.Root, "%s mounts need a root", backendTags[kind])
	}
	if m.ReadOnly && (kind == BackendNative || kind == BackendBridge) {
		return invalid("read_only", m.ReadOnly, "%s mounts cannot be read-only", backendTags[kind])
	}
	return nil
}

func invalid(field string, value interface{}, format string, args ...interface{}) error {
	err := errors.Newf(errors.CodeInvalidConfig, "invalid %s: %s", field, fmt.Sprintf(format, args...))
	return errors.WithContext(errors.WithContext(err, "field", field), "value", value)
}
