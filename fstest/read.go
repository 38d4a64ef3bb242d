package fstest

import (
	"errors"
	"io"
	"testing"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/stream"
)

// TestRead tests input streams opened on the Fixture.
func TestRead(t *testing.T, view core.View, config Config) {
	t.Run("Content", func(t *testing.T) {
		testReadContent(t, view)
	})
	t.Run("SizePreservesPosition", func(t *testing.T) {
		testReadSizePreservesPosition(t, view)
	})
	t.Run("SeekCurrent", func(t *testing.T) {
		testReadSeekCurrent(t, view)
	})
	t.Run("OpenMissing", func(t *testing.T) {
		in, err := view.OpenInputStream(Missing)
		if err == nil || in != nil {
			t.Errorf("OpenInputStream(%q): got (%v, %v), want (nil, error)", Missing, in, err)
		}
	})
	t.Run("CloseTwice", func(t *testing.T) {
		testReadCloseTwice(t, view)
	})
}

func open(t *testing.T, view core.View, path string) *stream.InputStream {
	t.Helper()
	in, err := view.OpenInputStream(path)
	if err != nil {
		t.Fatalf("OpenInputStream(%q): got error %v, want nil", path, err)
	}
	return in
}

// testReadContent reads the whole file.
func testReadContent(t *testing.T, view core.View) {
	in := open(t, view, TestFile)
	defer func() {
		if err := in.Close(); err != nil {
			t.Errorf("Close(): got error %v", err)
		}
	}()

	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v", err)
	}
	if string(data) != TestContent {
		t.Errorf("ReadAll(): got %q, want %q", data, TestContent)
	}

	n, err := in.Read(make([]byte, 4))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end: got (%d, %v), want (0, EOF)", n, err)
	}
}

// testReadSizePreservesPosition checks Size for every position in the file.
func testReadSizePreservesPosition(t *testing.T, view core.View) {
	for p := int64(0); p <= int64(len(TestContent)); p++ {
		in := open(t, view, TestFile)
		if _, err := in.SeekTo(p, stream.SeekStart); err != nil {
			t.Fatalf("SeekTo(%d): got error %v", p, err)
		}
		if got := in.Size(); got != int64(len(TestContent)) {
			t.Errorf("Size() at %d: got %d, want %d", p, got, len(TestContent))
		}
		if got := in.Position(); got != p {
			t.Errorf("Position() after Size(): got %d, want %d", got, p)
		}
		_ = in.Close()
	}
}

// testReadSeekCurrent checks that relative seeks use the logical position.
func testReadSeekCurrent(t *testing.T, view core.View) {
	in := open(t, view, TestFile)
	defer in.Close()

	head := make([]byte, 5)
	if _, err := io.ReadFull(in, head); err != nil {
		t.Fatalf("ReadFull(): got error %v", err)
	}
	pos, err := in.SeekTo(3, stream.SeekCurrent)
	if err != nil {
		t.Fatalf("SeekTo(3, current): got error %v", err)
	}
	if pos != 8 {
		t.Errorf("SeekTo(3, current): got %d, want 8", pos)
	}

	b := make([]byte, 1)
	if _, err := io.ReadFull(in, b); err != nil {
		t.Fatalf("ReadFull(): got error %v", err)
	}
	if b[0] != TestContent[8] {
		t.Errorf("byte at 8: got %q, want %q", b[0], TestContent[8])
	}
}

// testReadCloseTwice checks that a closed stream fails without faulting.
func testReadCloseTwice(t *testing.T, view core.View) {
	in := open(t, view, TestFile)
	if err := in.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
	if err := in.Close(); err != nil {
		t.Errorf("second Close(): got error %v", err)
	}
	for i := 0; i < 2; i++ {
		if got := in.Position(); got != -1 {
			t.Errorf("Position() after Close(): got %d, want -1", got)
		}
	}
	if _, err := in.Read(make([]byte, 1)); err == nil {
		t.Error("Read() after Close(): got nil error")
	}
}
