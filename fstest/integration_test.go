package fstest_test

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/jmgilman/go/vfs/billy"
	"github.com/jmgilman/go/vfs/bridge"
	"github.com/jmgilman/go/vfs/bridge/dirhost"
	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/fstest"
	"github.com/jmgilman/go/vfs/hook"
	"github.com/jmgilman/go/vfs/native"
)

// TestIntegration_Native runs the suite against the host filesystem.
func TestIntegration_Native(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) core.View {
		dir := t.TempDir()
		fstest.SeedDir(t, dir)
		return core.NewView(native.New(dir))
	})
}

// TestIntegration_NativeSubtree runs the suite on a view scoped below the
// backend root.
func TestIntegration_NativeSubtree(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) core.View {
		dir := t.TempDir()
		fstest.SeedDir(t, dir+"/Games/Project")
		return core.NewView(native.New(dir)).Subtree("Games").Subtree("Project")
	})
}

// TestIntegration_Memory runs the suite against an in-memory billy tree.
func TestIntegration_Memory(t *testing.T) {
	config := fstest.WritableConfig()
	config.MakeDirectory = true

	fstest.TestSuiteWithConfig(t, func(t *testing.T) core.View {
		fs := billy.NewMemory()
		fstest.SeedBilly(t, fs.Unwrap(), "")
		return core.NewView(fs)
	}, config)
}

// TestIntegration_MemoryReadOnly runs the read-only part of the suite.
func TestIntegration_MemoryReadOnly(t *testing.T) {
	fstest.TestSuiteWithConfig(t, func(t *testing.T) core.View {
		mfs := memfs.New()
		fstest.SeedBilly(t, mfs, "base")
		return core.NewView(billy.New(mfs, "base", billy.WithReadOnly()))
	}, fstest.ReadOnlyConfig())
}

// TestIntegration_Local runs the suite against a chrooted disk tree.
func TestIntegration_Local(t *testing.T) {
	config := fstest.WritableConfig()
	config.MakeDirectory = true

	fstest.TestSuiteWithConfig(t, func(t *testing.T) core.View {
		dir := t.TempDir()
		fstest.SeedDir(t, dir)
		return core.NewView(billy.NewLocal(dir))
	}, config)
}

// TestIntegration_Bridge runs the suite through the host bridge.
func TestIntegration_Bridge(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) core.View {
		dir := t.TempDir()
		fstest.SeedDir(t, dir)
		return core.NewView(bridge.New(dirhost.New(dir), ""))
	})
}

// TestIntegration_Hook runs the suite through a hook layered on memory.
func TestIntegration_Hook(t *testing.T) {
	config := fstest.WritableConfig()
	config.MakeDirectory = true

	fstest.TestSuiteWithConfig(t, func(t *testing.T) core.View {
		fs := billy.NewMemory()
		fstest.SeedBilly(t, fs.Unwrap(), "")
		return core.NewView(hook.New(core.NewView(fs), hook.SacredTears))
	}, config)
}
