package native

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Project", "Save"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Project", "Empty"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Project", "RPG_RT.ldb"), []byte("LcfDataBase"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Project", "Save", "Save01.lsd"), []byte("LcfSaveData"), 0o644))
	return root
}

func TestFS_Queries(t *testing.T) {
	root := seed(t)
	v := core.NewView(New(root)).Subtree("Project")

	assert.True(t, v.IsFile("RPG_RT.ldb"))
	assert.False(t, v.IsDirectory("RPG_RT.ldb", true))
	assert.True(t, v.IsDirectory("Save", false))
	assert.False(t, v.IsFile("Save"))
	assert.True(t, v.Exists("Save/Save01.lsd"))
	assert.Equal(t, int64(11), v.Filesize("RPG_RT.ldb"))

	assert.False(t, v.Exists("missing"))
	assert.False(t, v.IsFile("missing"))
	assert.False(t, v.IsDirectory("missing", true))
	assert.Equal(t, int64(-1), v.Filesize("missing"))
}

func TestFS_FileAppearsBetweenQueries(t *testing.T) {
	root := t.TempDir()
	v := core.NewView(New(root))

	assert.False(t, v.Exists("late.txt"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "late.txt"), []byte("x"), 0o644))
	assert.True(t, v.Exists("late.txt"))
}

func TestFS_ReadStream(t *testing.T) {
	root := seed(t)
	v := core.NewView(New(root, WithBufferSize(4)))

	in, err := v.OpenInputStream("Project/RPG_RT.ldb")
	require.NoError(t, err)
	defer in.Close()

	assert.Equal(t, int64(11), in.Size())
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "LcfDataBase", string(data))

	_, err = in.SeekTo(3, stream.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(3), in.Position())
}

func TestFS_OpenMissing(t *testing.T) {
	var logs bytes.Buffer
	logger := logging.New(logging.Config{Level: slog.LevelDebug, Output: &logs})
	v := core.NewView(New(t.TempDir(), WithLogger(logger)))

	in, err := v.OpenInputStream("missing.lsd")
	require.Error(t, err)
	assert.Nil(t, in)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, logs.String(), "missing.lsd")
}

func TestFS_WriteTruncateAndAppend(t *testing.T) {
	root := t.TempDir()
	v := core.NewView(New(root))
	require.True(t, v.IsFeatureSupported(core.FeatureWrite))

	write := func(mode core.OpenMode, data string) {
		out, err := v.OpenOutputStream("log.txt", mode)
		require.NoError(t, err)
		_, err = out.Write([]byte(data))
		require.NoError(t, err)
		require.NoError(t, out.Close())
	}

	write(core.DefaultWriteMode, "first")
	write(core.ModeWrite|core.ModeAppend, "+second")
	got, err := os.ReadFile(filepath.Join(root, "log.txt"))
	require.NoError(t, err)
	assert.Equal(t, "first+second", string(got))

	write(core.DefaultWriteMode, "third")
	got, err = os.ReadFile(filepath.Join(root, "log.txt"))
	require.NoError(t, err)
	assert.Equal(t, "third", string(got))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(root, "log.txt"))
		require.NoError(t, err)
		assert.Zero(t, info.Mode().Perm()&0o077)
	}
}

func TestFS_TypedRoundTrip(t *testing.T) {
	v := core.NewView(New(t.TempDir()))

	out, err := v.OpenOutputStream("obj.bin", core.DefaultWriteMode)
	require.NoError(t, err)
	require.True(t, stream.WriteObj(out, uint32(0xDEADBEEF)))
	require.True(t, stream.WriteObj(out, int16(-2)))
	require.NoError(t, out.Close())

	in, err := v.OpenInputStream("obj.bin")
	require.NoError(t, err)
	defer in.Close()

	var u uint32
	var i int16
	require.True(t, stream.ReadIntoObj(in, &u))
	require.True(t, stream.ReadIntoObj(in, &i))
	assert.Equal(t, uint32(0xDEADBEEF), u)
	assert.Equal(t, int16(-2), i)
}

func TestFS_ReadDirectory(t *testing.T) {
	root := seed(t)
	v := core.NewView(New(root))

	entries, err := v.ListDirectory("Project")
	require.NoError(t, err)
	assert.Equal(t, []core.DirectoryEntry{
		{Name: "Empty", Type: core.FileTypeDirectory},
		{Name: "RPG_RT.ldb", Type: core.FileTypeRegular},
		{Name: "Save", Type: core.FileTypeDirectory},
	}, entries)

	empty, err := v.ListDirectory("Project/Empty")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = v.ListDirectory("nope")
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestFS_ReadDirectoryFollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := seed(t)
	require.NoError(t, os.Symlink(filepath.Join(root, "Project", "Save"), filepath.Join(root, "Project", "SaveLink")))

	entries, err := core.NewView(New(root)).ListDirectory("Project")
	require.NoError(t, err)
	assert.Contains(t, entries, core.DirectoryEntry{Name: "SaveLink", Type: core.FileTypeDirectory})

	fs := New(root)
	assert.True(t, fs.IsDirectory("Project/SaveLink", true))
	assert.False(t, fs.IsDirectory("Project/SaveLink", false))
}

func TestFS_MakeDirectory(t *testing.T) {
	root := t.TempDir()
	v := core.NewView(New(root))

	assert.True(t, v.MakeDirectory("a/b/c", false))
	assert.True(t, v.IsDirectory("a/b/c", false))
	assert.True(t, v.MakeDirectory("a/b", false))

	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), nil, 0o644))
	assert.False(t, v.MakeDirectory("file", false))
}

func TestFS_Capabilities(t *testing.T) {
	fs := New("/srv/games/")
	assert.True(t, fs.IsFeatureSupported(core.FeatureWrite))
	assert.False(t, fs.IsFeatureSupported(core.FeatureMakeDirectory))
	assert.False(t, fs.IsFeatureSupported(core.FeatureSymlink))
	assert.Equal(t, "[Native] /srv/games", fs.Describe())
	assert.False(t, fs.Parent().Valid())

	parent := core.NewView(New("/srv"))
	child := New("/srv/games", WithParent(parent))
	assert.True(t, child.Parent().Valid())
}
