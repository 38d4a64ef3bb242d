package fstest

import (
	"testing"

	"github.com/jmgilman/go/vfs/core"
)

// TestQueries tests IsFile, IsDirectory, Exists and Filesize on the Fixture.
func TestQueries(t *testing.T, view core.View) {
	t.Run("Exclusive", func(t *testing.T) {
		testQueriesExclusive(t, view)
	})
	t.Run("Missing", func(t *testing.T) {
		testQueriesMissing(t, view)
	})
	t.Run("Filesize", func(t *testing.T) {
		if got := view.Filesize(TestFile); got != int64(len(TestContent)) {
			t.Errorf("Filesize(%q): got %d, want %d", TestFile, got, len(TestContent))
		}
	})
	t.Run("Subtree", func(t *testing.T) {
		sub := view.Subtree(TestDir)
		if !sub.IsFile("testfile.txt") {
			t.Errorf("Subtree(%q).IsFile(%q): got false, want true", TestDir, "testfile.txt")
		}
		if sub.IsFile(TestFile) {
			t.Errorf("Subtree(%q).IsFile(%q): got true, want false", TestDir, TestFile)
		}
	})
}

// testQueriesExclusive verifies that every existing path is exactly one of
// file or directory.
func testQueriesExclusive(t *testing.T, view core.View) {
	tests := []struct {
		path  string
		isDir bool
	}{
		{TestFile, false},
		{TestDir, true},
		{EmptyDir, true},
	}
	for _, tt := range tests {
		if !view.Exists(tt.path) {
			t.Errorf("Exists(%q): got false, want true", tt.path)
			continue
		}
		isFile := view.IsFile(tt.path)
		isDir := view.IsDirectory(tt.path, true)
		if isFile == isDir {
			t.Errorf("%q: IsFile = %v, IsDirectory = %v, want exactly one", tt.path, isFile, isDir)
		}
		if isDir != tt.isDir {
			t.Errorf("IsDirectory(%q): got %v, want %v", tt.path, isDir, tt.isDir)
		}
	}
}

// testQueriesMissing verifies the missing sentinels, twice to show that
// nothing is cached.
func testQueriesMissing(t *testing.T, view core.View) {
	for _, path := range []string{Missing, Missing, TestDir + "/" + Missing} {
		if view.Exists(path) {
			t.Errorf("Exists(%q): got true, want false", path)
		}
		if view.IsFile(path) {
			t.Errorf("IsFile(%q): got true, want false", path)
		}
		if view.IsDirectory(path, true) {
			t.Errorf("IsDirectory(%q): got true, want false", path)
		}
		if got := view.Filesize(path); got != -1 {
			t.Errorf("Filesize(%q): got %d, want -1", path, got)
		}
	}
}
