package fstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// SeedDir writes the Fixture below dir on disk.
func SeedDir(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, TestDir), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", TestDir, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, EmptyDir), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", EmptyDir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(TestFile)), []byte(TestContent), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", TestFile, err)
	}
}

// SeedBilly writes the Fixture below dir of a billy filesystem.
func SeedBilly(t testing.TB, bfs billy.Filesystem, dir string) {
	t.Helper()
	if err := bfs.MkdirAll(bfs.Join(dir, EmptyDir), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", EmptyDir, err)
	}
	if err := util.WriteFile(bfs, bfs.Join(dir, TestFile), []byte(TestContent), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", TestFile, err)
	}
}
