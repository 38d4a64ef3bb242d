// Package fstest provides a conformance test suite for validating backend
// implementations against the core.Backend contracts.
//
// Backends differ in how their storage is seeded, so the suite works on a
// view that the caller has already populated with the Fixture tree. Seed
// helpers cover disk directories and billy filesystems.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) core.View {
//	        dir := t.TempDir()
//	        fstest.SeedDir(t, dir)
//	        return core.NewView(mybackend.New(dir))
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/vfs/core"
)

// Fixture paths and content seeded before every suite run.
const (
	TestDir     = "testdir"
	TestFile    = "testdir/testfile.txt"
	EmptyDir    = "emptydir"
	Missing     = "nonexistent"
	TestContent = "test file content"
)

// Config configures the suite to match backend capabilities.
type Config struct {
	// Writable indicates output streams can be created. Write tests are
	// skipped otherwise.
	Writable bool

	// MakeDirectory indicates FeatureMakeDirectory is advertised.
	MakeDirectory bool

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g., "Write/Append").
	SkipTests []string
}

// WritableConfig returns configuration for backends that accept writes.
func WritableConfig() Config {
	return Config{Writable: true}
}

// ReadOnlyConfig returns configuration for backends that only read.
func ReadOnlyConfig() Config {
	return Config{}
}

// TestSuite runs all conformance tests with WritableConfig.
// The newView function must return a fresh view seeded with the Fixture for
// each call.
func TestSuite(t *testing.T, newView func(t *testing.T) core.View) {
	TestSuiteWithConfig(t, newView, WritableConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newView func(t *testing.T) core.View, config Config) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("Query", func(t *testing.T) {
		if shouldSkip("Query") {
			t.Skip("Skipped by backend configuration")
		}
		TestQueries(t, newView(t))
	})

	t.Run("Read", func(t *testing.T) {
		if shouldSkip("Read") {
			t.Skip("Skipped by backend configuration")
		}
		TestRead(t, newView(t), config)
	})

	t.Run("Directory", func(t *testing.T) {
		if shouldSkip("Directory") {
			t.Skip("Skipped by backend configuration")
		}
		TestDirectory(t, newView(t))
	})

	t.Run("Capabilities", func(t *testing.T) {
		if shouldSkip("Capabilities") {
			t.Skip("Skipped by backend configuration")
		}
		TestCapabilities(t, newView(t), config)
	})

	t.Run("Write", func(t *testing.T) {
		if !config.Writable {
			t.Skip("Backend does not support writing")
		}
		if shouldSkip("Write") {
			t.Skip("Skipped by backend configuration")
		}
		TestWrite(t, newView(t), config)
	})
}

// TestCapabilities verifies that only configured capabilities are
// advertised.
func TestCapabilities(t *testing.T, view core.View, config Config) {
	if got := view.IsFeatureSupported(core.FeatureWrite); got != config.Writable {
		t.Errorf("IsFeatureSupported(write) = %v, want %v", got, config.Writable)
	}
	if got := view.IsFeatureSupported(core.FeatureMakeDirectory); got != config.MakeDirectory {
		t.Errorf("IsFeatureSupported(mkdir) = %v, want %v", got, config.MakeDirectory)
	}
	if view.IsFeatureSupported(core.FeatureSymlink) {
		t.Error("IsFeatureSupported(symlink) = true, want false")
	}
	if view.Describe() == "" {
		t.Error("Describe() returned an empty string")
	}
}
