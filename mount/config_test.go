package mount

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
log_level: debug
buffer_size: 8192
mounts:
  - name: game
    backend: native
    root: /srv/games/Project
    hook: auto
  - name: saves
    backend: memory
  - name: rtp
    backend: local
    root: /usr/share/rtp
    read_only: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8192, cfg.BufferSize)
	require.Len(t, cfg.Mounts, 3)
	assert.Equal(t, MountConfig{Name: "game", Backend: "native", Root: "/srv/games/Project", Hook: "auto"}, cfg.Mounts[0])
	assert.True(t, cfg.Mounts[2].ReadOnly)

	kind, err := cfg.Mounts[1].Kind()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, kind)
	mode, err := cfg.Mounts[0].HookMode()
	require.NoError(t, err)
	assert.Equal(t, HookAuto, mode)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"buffer too small", "buffer_size: 100", "buffer_size"},
		{"buffer too large", "buffer_size: 2000000", "buffer_size"},
		{"log level", "log_level: loud", "log_level"},
		{"log format", "log_format: xml", "log_format"},
		{"backend", "mounts: [{name: a, backend: ftp, root: /}]", "backend"},
		{"hook", "mounts: [{name: a, backend: native, root: /, hook: always}]", "hook"},
		{"missing name", "mounts: [{backend: memory}]", "name"},
		{"missing root", "mounts: [{name: a, backend: native}]", "root"},
		{"read-only native", "mounts: [{name: a, backend: native, root: /, read_only: true}]", "read_only"},
		{"duplicate", "mounts: [{name: a, backend: memory}, {name: a, backend: memory}]", "mounts.name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeInvalidConfig), "got %v", err)

			var pe errors.PlatformError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.field, pe.Context()["field"])
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("mountz: []"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidConfig))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vfs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Mounts, 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)
	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSettings_Logger(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.LogFormat = "json"

	s, err := cfg.Settings()
	require.NoError(t, err)

	var out bytes.Buffer
	logger, err := s.Logger(&out)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "mount", "game")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), `"msg":"shown"`)
}
