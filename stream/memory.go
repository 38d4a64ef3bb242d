package stream

import (
	"io"

	"github.com/jmgilman/go/vfs/errors"
)

// MemoryView is a Buffer over a span of caller-owned memory.
//
// The view never owns the span: closing it only drops the reference, and the
// caller must keep the storage alive while the view is in use. Writes
// overwrite the span in place and fail once they reach its end. Seeks clamp
// to [0, len(span)].
type MemoryView struct {
	span   []byte
	pos    int64
	closed bool
}

// NewMemoryView returns a view over span.
func NewMemoryView(span []byte) *MemoryView {
	return &MemoryView{span: span}
}

// Len returns the length of the span.
func (v *MemoryView) Len() int {
	return len(v.span)
}

// Read implements Buffer.
func (v *MemoryView) Read(p []byte) (int, error) {
	if v.closed {
		return 0, errClosed("read")
	}
	if v.pos >= int64(len(v.span)) {
		return 0, io.EOF
	}
	n := copy(p, v.span[v.pos:])
	v.pos += int64(n)
	return n, nil
}

// Write implements Buffer.
func (v *MemoryView) Write(p []byte) (int, error) {
	if v.closed {
		return 0, errClosed("write")
	}
	var n int
	if v.pos < int64(len(v.span)) {
		n = copy(v.span[v.pos:], p)
	}
	v.pos += int64(n)
	if n < len(p) {
		return n, errors.Newf(errors.CodeShortWrite, "write of %d bytes exceeds memory span by %d", len(p), len(p)-n)
	}
	return n, nil
}

// Seek implements Buffer.
func (v *MemoryView) Seek(offset int64, origin SeekOrigin) (int64, error) {
	if v.closed {
		return -1, errClosed("seek")
	}
	var target int64
	switch origin {
	case SeekStart:
		target = offset
	case SeekCurrent:
		target = v.pos + offset
	case SeekEnd:
		target = int64(len(v.span)) + offset
	default:
		return -1, errors.Newf(errors.CodeInvalidInput, "invalid seek origin %d", origin)
	}
	v.pos = min(max(target, 0), int64(len(v.span)))
	return v.pos, nil
}

// Close implements Buffer. The span itself is left untouched.
func (v *MemoryView) Close() error {
	v.closed = true
	v.span = nil
	return nil
}

// MemoryBuffer is a Buffer that owns its storage.
//
// It behaves like a MemoryView over its own bytes. NewMemoryBuffer takes
// ownership of data: the caller must not use the slice afterwards.
type MemoryBuffer struct {
	view    MemoryView
	storage []byte
}

// NewMemoryBuffer returns a buffer that owns data.
func NewMemoryBuffer(data []byte) *MemoryBuffer {
	b := &MemoryBuffer{storage: data}
	b.view.span = b.storage
	return b
}

// Bytes returns the owned storage, or nil once the buffer is closed.
func (b *MemoryBuffer) Bytes() []byte {
	return b.storage
}

// Len returns the length of the owned storage.
func (b *MemoryBuffer) Len() int {
	return len(b.storage)
}

// Read implements Buffer.
func (b *MemoryBuffer) Read(p []byte) (int, error) {
	return b.view.Read(p)
}

// Write implements Buffer.
func (b *MemoryBuffer) Write(p []byte) (int, error) {
	return b.view.Write(p)
}

// Seek implements Buffer.
func (b *MemoryBuffer) Seek(offset int64, origin SeekOrigin) (int64, error) {
	return b.view.Seek(offset, origin)
}

// Close implements Buffer and releases the storage.
func (b *MemoryBuffer) Close() error {
	_ = b.view.Close()
	b.storage = nil
	return nil
}

// Compile-time interface checks.
var (
	_ Buffer = (*MemoryView)(nil)
	_ Buffer = (*MemoryBuffer)(nil)
)
