package fstest

import (
	"io"
	"testing"

	"github.com/jmgilman/go/vfs/core"
	"github.com/jmgilman/go/vfs/stream"
)

// TestWrite tests output streams. The view must advertise FeatureWrite.
func TestWrite(t *testing.T, view core.View, config Config) {
	t.Run("CreateAndRead", func(t *testing.T) {
		writeFile(t, view, "new.txt", core.DefaultWriteMode, "hello")
		if got := readFile(t, view, "new.txt"); got != "hello" {
			t.Errorf("content: got %q, want %q", got, "hello")
		}
	})

	t.Run("Truncate", func(t *testing.T) {
		writeFile(t, view, TestFile, core.DefaultWriteMode, "short")
		if got := readFile(t, view, TestFile); got != "short" {
			t.Errorf("content: got %q, want %q", got, "short")
		}
	})

	t.Run("Append", func(t *testing.T) {
		writeFile(t, view, "log.txt", core.DefaultWriteMode, "one")
		writeFile(t, view, "log.txt", core.ModeWrite|core.ModeAppend, "two")
		if got := readFile(t, view, "log.txt"); got != "onetwo" {
			t.Errorf("content: got %q, want %q", got, "onetwo")
		}
	})

	t.Run("LargerThanBuffer", func(t *testing.T) {
		data := make([]byte, 3*stream.DefaultBufferSize+17)
		for i := range data {
			data[i] = byte(i % 251)
		}
		writeFile(t, view, "large.bin", core.DefaultWriteMode, string(data))
		if got := view.Filesize("large.bin"); got != int64(len(data)) {
			t.Errorf("Filesize(): got %d, want %d", got, len(data))
		}
		if got := readFile(t, view, "large.bin"); got != string(data) {
			t.Error("large file content mismatch")
		}
	})

	t.Run("TypedRoundTrip", func(t *testing.T) {
		testWriteTypedRoundTrip(t, view)
	})

	t.Run("MakeDirectory", func(t *testing.T) {
		if !config.MakeDirectory {
			t.Skip("Backend does not create directories")
		}
		if !view.MakeDirectory("made/nested", false) {
			t.Fatal("MakeDirectory(made/nested): got false")
		}
		if !view.IsDirectory("made/nested", false) {
			t.Error("IsDirectory(made/nested): got false after MakeDirectory")
		}
	})
}

func writeFile(t *testing.T, view core.View, path string, mode core.OpenMode, data string) {
	t.Helper()
	out, err := view.OpenOutputStream(path, mode)
	if err != nil {
		t.Fatalf("OpenOutputStream(%q): got error %v, want nil", path, err)
	}
	if _, err := io.WriteString(out, data); err != nil {
		t.Fatalf("Write(%q): got error %v", path, err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close(%q): got error %v", path, err)
	}
}

func readFile(t *testing.T, view core.View, path string) string {
	t.Helper()
	in := open(t, view, path)
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatalf("ReadAll(%q): got error %v", path, err)
	}
	return string(data)
}

// testWriteTypedRoundTrip writes every swapped integer width and reads it
// back from a fresh stream.
func testWriteTypedRoundTrip(t *testing.T, view core.View) {
	out, err := view.OpenOutputStream("typed.bin", core.DefaultWriteMode)
	if err != nil {
		t.Fatalf("OpenOutputStream(): got error %v", err)
	}
	ok := stream.WriteObj(out, int16(-12345)) &&
		stream.WriteObj(out, uint16(0xBEEF)) &&
		stream.WriteObj(out, int32(-7)) &&
		stream.WriteObj(out, uint32(0xCAFEBABE))
	if !ok {
		t.Fatal("WriteObj(): got false")
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close(): got error %v", err)
	}

	in := open(t, view, "typed.bin")
	defer in.Close()

	var (
		i16 int16
		u16 uint16
		i32 int32
		u32 uint32
	)
	if !stream.ReadIntoObj(in, &i16) || !stream.ReadIntoObj(in, &u16) ||
		!stream.ReadIntoObj(in, &i32) || !stream.ReadIntoObj(in, &u32) {
		t.Fatal("ReadIntoObj(): got false")
	}
	if i16 != -12345 || u16 != 0xBEEF || i32 != -7 || u32 != 0xCAFEBABE {
		t.Errorf("round trip: got %d %#x %d %#x", i16, u16, i32, u32)
	}

	var extra uint32
	if stream.ReadIntoObj(in, &extra) {
		t.Error("ReadIntoObj() past end: got true")
	}
}
