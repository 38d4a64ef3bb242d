package stream

import (
	"runtime"

	"github.com/jmgilman/go/vfs/errors"
)

// OutputStream is a named write stream that owns one Buffer.
//
// Close flushes the buffer before releasing it. An OutputStream that becomes
// unreachable is closed by a finalizer, so buffered bytes are persisted on a
// best-effort basis even without an explicit Close.
type OutputStream struct {
	buf  Buffer
	name string
}

// NewOutputStream takes ownership of buf. The name is used for diagnostics only.
func NewOutputStream(buf Buffer, name string) *OutputStream {
	s := &OutputStream{buf: buf, name: name}
	if buf != nil {
		runtime.SetFinalizer(s, (*OutputStream).finalize)
	}
	return s
}

func (s *OutputStream) finalize() {
	_ = s.Close()
}

// Name returns the display name given at construction.
func (s *OutputStream) Name() string {
	return s.name
}

// Closed reports whether the stream no longer owns a buffer.
func (s *OutputStream) Closed() bool {
	return s.buf == nil
}

// Write implements io.Writer.
func (s *OutputStream) Write(p []byte) (int, error) {
	if s.buf == nil {
		return 0, errClosedStream(s.name, "write")
	}
	return s.buf.Write(p)
}

// Flush pushes buffered bytes to the backend when the buffer holds any back.
func (s *OutputStream) Flush() error {
	if s.buf == nil {
		return errClosedStream(s.name, "flush")
	}
	if f, ok := s.buf.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Seek implements io.Seeker.
func (s *OutputStream) Seek(offset int64, whence int) (int64, error) {
	origin, ok := OriginFromWhence(whence)
	if !ok {
		return -1, errors.Newf(errors.CodeInvalidInput, "invalid whence %d", whence)
	}
	if s.buf == nil {
		return -1, errClosedStream(s.name, "seek")
	}
	return s.buf.Seek(offset, origin)
}

// Position returns the logical write position, or -1 on failure.
func (s *OutputStream) Position() int64 {
	if s.buf == nil {
		return -1
	}
	pos, err := s.buf.Seek(0, SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Close flushes and releases the buffer. Calling Close again is a no-op.
func (s *OutputStream) Close() error {
	if s.buf == nil {
		return nil
	}
	err := s.buf.Close()
	s.buf = nil
	runtime.SetFinalizer(s, nil)
	return err
}

// Detach hands the buffer to the caller without flushing or closing it and
// leaves the stream closed. It returns nil for a closed stream.
func (s *OutputStream) Detach() Buffer {
	buf := s.buf
	s.buf = nil
	runtime.SetFinalizer(s, nil)
	return buf
}
