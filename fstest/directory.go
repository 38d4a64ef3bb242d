package fstest

import (
	"testing"

	"github.com/jmgilman/go/vfs/core"
)

// TestDirectory tests directory enumeration on the Fixture.
func TestDirectory(t *testing.T, view core.View) {
	t.Run("List", func(t *testing.T) {
		entries, err := view.ListDirectory(TestDir)
		if err != nil {
			t.Fatalf("ListDirectory(%q): got error %v, want nil", TestDir, err)
		}
		if len(entries) != 1 {
			t.Fatalf("ListDirectory(%q): got %d entries, want 1", TestDir, len(entries))
		}
		if entries[0].Name != "testfile.txt" {
			t.Errorf("ListDirectory(%q): got entry name %q, want %q", TestDir, entries[0].Name, "testfile.txt")
		}
		if entries[0].IsDir() {
			t.Errorf("ListDirectory(%q): entry IsDir() = true, want false", TestDir)
		}
	})

	t.Run("Root", func(t *testing.T) {
		entries, err := view.ListDirectory("")
		if err != nil {
			t.Fatalf("ListDirectory(root): got error %v, want nil", err)
		}
		want := []core.DirectoryEntry{
			{Name: EmptyDir, Type: core.FileTypeDirectory},
			{Name: TestDir, Type: core.FileTypeDirectory},
		}
		for _, w := range want {
			found := false
			for _, e := range entries {
				if e == w {
					found = true
				}
			}
			if !found {
				t.Errorf("ListDirectory(root): got %v, want it to contain %v", entries, w)
			}
		}
		for i := 1; i < len(entries); i++ {
			if entries[i-1].Name >= entries[i].Name {
				t.Errorf("ListDirectory(root): %q listed before %q", entries[i-1].Name, entries[i].Name)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		entries, err := view.ListDirectory(EmptyDir)
		if err != nil {
			t.Fatalf("ListDirectory(%q): got error %v, want nil", EmptyDir, err)
		}
		if entries == nil || len(entries) != 0 {
			t.Errorf("ListDirectory(%q): got %#v, want empty slice", EmptyDir, entries)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := view.ListDirectory(Missing); err == nil {
			t.Errorf("ListDirectory(%q): got nil error", Missing)
		}
	})
}
