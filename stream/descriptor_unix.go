//go:build unix

package stream

import (
	"io"

	"golang.org/x/sys/unix"
)

// FileDescriptor is a raw unix file descriptor satisfying Descriptor.
// Reads and writes are plain read(2)/write(2) calls; nothing is buffered.
type FileDescriptor int

// OpenFileDescriptor opens path with open(2).
func OpenFileDescriptor(path string, flags int, perm uint32) (FileDescriptor, error) {
	for {
		fd, err := unix.Open(path, flags|unix.O_CLOEXEC, perm)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return -1, err
		}
		return FileDescriptor(fd), nil
	}
}

// Fd returns the descriptor number.
func (fd FileDescriptor) Fd() int {
	return int(fd)
}

// Read implements io.Reader. A zero-byte read(2) is reported as io.EOF.
func (fd FileDescriptor) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(int(fd), p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 && len(p) > 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Write implements io.Writer with a single write(2); a short count is
// returned as is.
func (fd FileDescriptor) Write(p []byte) (int, error) {
	for {
		n, err := unix.Write(int(fd), p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n < len(p) {
			return n, io.ErrShortWrite
		}
		return n, nil
	}
}

// Seek implements io.Seeker with lseek(2).
func (fd FileDescriptor) Seek(offset int64, whence int) (int64, error) {
	return unix.Seek(int(fd), offset, whence)
}

// Close implements io.Closer.
func (fd FileDescriptor) Close() error {
	return unix.Close(int(fd))
}

var _ Descriptor = FileDescriptor(0)
