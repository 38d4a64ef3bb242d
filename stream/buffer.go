package stream

import (
	"io"

	"github.com/jmgilman/go/vfs/errors"
)

// SeekOrigin is the reference point of a seek.
type SeekOrigin int

const (
	// SeekStart seeks relative to the start of the stream.
	SeekStart SeekOrigin = iota
	// SeekCurrent seeks relative to the current logical position.
	SeekCurrent
	// SeekEnd seeks relative to the end of the stream.
	SeekEnd
)

// String returns a string representation of the SeekOrigin.
func (o SeekOrigin) String() string {
	switch o {
	case SeekStart:
		return "start"
	case SeekCurrent:
		return "current"
	case SeekEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Whence translates the origin into the io.Seek* whence value.
func (o SeekOrigin) Whence() int {
	switch o {
	case SeekCurrent:
		return io.SeekCurrent
	case SeekEnd:
		return io.SeekEnd
	default:
		return io.SeekStart
	}
}

// OriginFromWhence translates an io.Seek* whence value into a SeekOrigin.
// It reports false for unknown values.
func OriginFromWhence(whence int) (SeekOrigin, bool) {
	switch whence {
	case io.SeekStart:
		return SeekStart, true
	case io.SeekCurrent:
		return SeekCurrent, true
	case io.SeekEnd:
		return SeekEnd, true
	default:
		return SeekStart, false
	}
}

// Buffer is a low-level byte source or sink.
//
// Read follows io.Reader: it returns io.EOF once no more data is available.
// Seek returns the new absolute position, or -1 and an error.
// Close releases whatever the buffer owns and is idempotent.
type Buffer interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Seek(offset int64, origin SeekOrigin) (int64, error)
	Close() error
}

// Flusher is implemented by buffers that hold back written data.
type Flusher interface {
	Flush() error
}

// Descriptor is a raw, unbuffered I/O handle.
//
// Seek takes an io.Seek* whence value. *os.File, billy.File and
// FileDescriptor satisfy it.
type Descriptor interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

func errClosed(op string) error {
	return errors.Newf(errors.CodeClosed, "%s on closed buffer", op)
}

func errUnsupported(op string) error {
	return errors.Newf(errors.CodeUnsupported, "%s not supported by this buffer", op)
}
