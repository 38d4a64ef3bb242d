package stream

import (
	"runtime"

	"github.com/jmgilman/go/vfs/errors"
)

// InputStream is a named, seekable read stream that owns one Buffer.
//
// The zero value and closed streams fail every operation without touching a
// buffer. An InputStream that becomes unreachable is closed by a finalizer.
type InputStream struct {
	buf        Buffer
	name       string
	size       int64
	sizeCached bool
}

// NewInputStream takes ownership of buf. The name is used for diagnostics only.
func NewInputStream(buf Buffer, name string) *InputStream {
	s := &InputStream{buf: buf, name: name}
	if buf != nil {
		runtime.SetFinalizer(s, (*InputStream).finalize)
	}
	return s
}

func (s *InputStream) finalize() {
	_ = s.Close()
}

// Name returns the display name given at construction.
func (s *InputStream) Name() string {
	return s.name
}

// Closed reports whether the stream no longer owns a buffer.
func (s *InputStream) Closed() bool {
	return s.buf == nil
}

// Read implements io.Reader.
func (s *InputStream) Read(p []byte) (int, error) {
	if s.buf == nil {
		return 0, errClosedStream(s.name, "read")
	}
	return s.buf.Read(p)
}

// Seek implements io.Seeker.
func (s *InputStream) Seek(offset int64, whence int) (int64, error) {
	origin, ok := OriginFromWhence(whence)
	if !ok {
		return -1, errors.Newf(errors.CodeInvalidInput, "invalid whence %d", whence)
	}
	return s.SeekTo(offset, origin)
}

// SeekTo moves the logical position and returns the new absolute position.
func (s *InputStream) SeekTo(offset int64, origin SeekOrigin) (int64, error) {
	if s.buf == nil {
		return -1, errClosedStream(s.name, "seek")
	}
	return s.buf.Seek(offset, origin)
}

// Position returns the logical read position, or -1 on failure.
func (s *InputStream) Position() int64 {
	if s.buf == nil {
		return -1
	}
	pos, err := s.buf.Seek(0, SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Size returns the stream length, or -1 on failure. It is computed once by
// seeking to the end and back and cached afterwards; the logical position is
// unchanged.
func (s *InputStream) Size() int64 {
	if s.buf == nil {
		return -1
	}
	if s.sizeCached {
		return s.size
	}

	cur := s.Position()
	if cur < 0 {
		return -1
	}
	end, err := s.buf.Seek(0, SeekEnd)
	if _, restoreErr := s.buf.Seek(cur, SeekStart); restoreErr != nil || err != nil {
		return -1
	}

	s.size = end
	s.sizeCached = true
	return s.size
}

// Close releases the buffer. Calling Close again is a no-op.
func (s *InputStream) Close() error {
	if s.buf == nil {
		return nil
	}
	err := s.buf.Close()
	s.buf = nil
	runtime.SetFinalizer(s, nil)
	return err
}

// Detach hands the buffer to the caller without closing it and leaves the
// stream closed. It returns nil for a closed stream.
func (s *InputStream) Detach() Buffer {
	buf := s.buf
	s.buf = nil
	runtime.SetFinalizer(s, nil)
	return buf
}

func errClosedStream(name, op string) error {
	return errors.WithContext(errors.Newf(errors.CodeClosed, "%s on closed stream", op), "name", name)
}
