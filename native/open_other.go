//go:build !unix

package native

import (
	"os"

	"github.com/jmgilman/go/vfs/stream"
)

func openRead(path string) (stream.Descriptor, error) {
	return os.OpenFile(path, os.O_RDONLY, 0)
}

func openWrite(path string, appendMode bool) (stream.Descriptor, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if appendMode {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	return os.OpenFile(path, flags, 0o600)
}
