//go:build unix

package native

import (
	"io/fs"

	"github.com/jmgilman/go/vfs/stream"
	"golang.org/x/sys/unix"
)

func openRead(path string) (stream.Descriptor, error) {
	fd, err := stream.OpenFileDescriptor(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return fd, nil
}

func openWrite(path string, appendMode bool) (stream.Descriptor, error) {
	flags := unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC
	if appendMode {
		flags = unix.O_WRONLY | unix.O_CREAT | unix.O_APPEND
	}
	fd, err := stream.OpenFileDescriptor(path, flags, unix.S_IRUSR|unix.S_IWUSR)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	return fd, nil
}
