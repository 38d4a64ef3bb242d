package stream

import (
	stderrors "errors"
	"io"
	"log/slog"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
)

// DefaultBufferSize is the lookahead and writeback capacity of an FdBuffer.
const DefaultBufferSize = 4096

type bufferMode int

const (
	modeRead bufferMode = iota
	modeWrite
)

// Option configures an FdBuffer.
type Option func(*fdConfig)

type fdConfig struct {
	size     int
	logger   *slog.Logger
	prefetch []byte
}

// WithBufferSize sets the buffer capacity. Values below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(c *fdConfig) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithLogger sets the logger used for descriptor failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *fdConfig) {
		c.logger = logger
	}
}

// WithPrefetch seeds a reader with bytes already read from the descriptor.
// They are served before the first underflow.
func WithPrefetch(data []byte) Option {
	return func(c *fdConfig) {
		c.prefetch = data
	}
}

func newFdConfig(opts []Option) fdConfig {
	c := fdConfig{size: DefaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	c.logger = logging.OrNop(c.logger)
	return c
}

// FdBuffer buffers a raw Descriptor in one direction.
//
// In read mode a fixed-size lookahead window is refilled with exactly one
// descriptor read whenever it runs dry. A failed read is logged and reported
// as io.EOF. Every seek goes to the descriptor and drops the window; seeks
// from SeekCurrent are corrected by the unread part of the window so they are
// relative to the logical position.
//
// In write mode bytes collect in a writeback buffer that is flushed with one
// descriptor write. When the buffer is full, the next byte is written on its
// own right after the flush. A short or failed flush marks the buffer failed
// and every later write is refused. Close flushes before releasing the
// descriptor.
type FdBuffer struct {
	fd     Descriptor
	mode   bufferMode
	buf    []byte
	start  int // read: first unread byte
	end    int // read: end of window; write: fill level
	failed bool
	closed bool
	logger *slog.Logger
}

// NewFdReader returns a read-mode FdBuffer that owns fd.
func NewFdReader(fd Descriptor, opts ...Option) *FdBuffer {
	c := newFdConfig(opts)
	size := max(c.size, len(c.prefetch))
	b := &FdBuffer{
		fd:     fd,
		mode:   modeRead,
		buf:    make([]byte, size),
		logger: c.logger,
	}
	b.end = copy(b.buf, c.prefetch)
	return b
}

// NewFdWriter returns a write-mode FdBuffer that owns fd.
func NewFdWriter(fd Descriptor, opts ...Option) *FdBuffer {
	c := newFdConfig(opts)
	return &FdBuffer{
		fd:     fd,
		mode:   modeWrite,
		buf:    make([]byte, c.size),
		logger: c.logger,
	}
}

// Buffered returns the number of bytes held in the window (read mode) or
// waiting to be flushed (write mode).
func (b *FdBuffer) Buffered() int {
	return b.end - b.start
}

// Failed reports whether a flush came up short.
func (b *FdBuffer) Failed() bool {
	return b.failed
}

// Read implements Buffer.
func (b *FdBuffer) Read(p []byte) (int, error) {
	if b.closed {
		return 0, errClosed("read")
	}
	if b.mode != modeRead {
		return 0, errUnsupported("read")
	}
	if len(p) == 0 {
		return 0, nil
	}
	if b.start == b.end && !b.underflow() {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.start:b.end])
	b.start += n
	return n, nil
}

// underflow refills the window with a single descriptor read.
func (b *FdBuffer) underflow() bool {
	n, err := b.fd.Read(b.buf)
	if err != nil && !stderrors.Is(err, io.EOF) {
		b.logger.Debug("underflow failed", "error", err)
		b.start, b.end = 0, 0
		return false
	}
	if n <= 0 {
		b.start, b.end = 0, 0
		return false
	}
	b.start, b.end = 0, n
	return true
}

// Seek implements Buffer.
func (b *FdBuffer) Seek(offset int64, origin SeekOrigin) (int64, error) {
	if b.closed {
		return -1, errClosed("seek")
	}
	if b.mode == modeWrite {
		if err := b.sync(); err != nil {
			return -1, err
		}
	} else if origin == SeekCurrent {
		offset -= int64(b.end - b.start)
	}

	pos, err := b.fd.Seek(offset, origin.Whence())
	if b.mode == modeRead {
		b.start, b.end = 0, 0
	}
	if err != nil {
		b.logger.Debug("seek failed", "offset", offset, "origin", origin.String(), "error", err)
		return -1, errors.Wrap(err, errors.CodeIO, "seek failed")
	}
	return pos, nil
}

// Write implements Buffer.
func (b *FdBuffer) Write(p []byte) (int, error) {
	if b.closed {
		return 0, errClosed("write")
	}
	if b.mode != modeWrite {
		return 0, errUnsupported("write")
	}
	if b.failed {
		return 0, errors.New(errors.CodeShortWrite, "stream failed on an earlier write")
	}

	written := 0
	for written < len(p) {
		if b.end == len(b.buf) {
			if err := b.sync(); err != nil {
				return written, err
			}
			if err := b.writeDirect(p[written : written+1]); err != nil {
				return written, err
			}
			written++
			continue
		}
		n := copy(b.buf[b.end:], p[written:])
		b.end += n
		written += n
	}
	return written, nil
}

// Flush writes buffered bytes to the descriptor. It is a no-op in read mode.
func (b *FdBuffer) Flush() error {
	if b.closed {
		return errClosed("flush")
	}
	if b.mode != modeWrite {
		return nil
	}
	return b.sync()
}

func (b *FdBuffer) sync() error {
	if b.failed {
		return errors.New(errors.CodeShortWrite, "stream failed on an earlier write")
	}
	if b.end == 0 {
		return nil
	}
	want := b.end
	b.end = 0
	return b.writeDirect(b.buf[:want])
}

// writeDirect issues one descriptor write and fails the buffer when it is short.
func (b *FdBuffer) writeDirect(p []byte) error {
	n, err := b.fd.Write(p)
	if err == nil && n >= len(p) {
		return nil
	}
	b.failed = true
	b.logger.Debug("write failed", "wanted", len(p), "written", n, "error", err)
	if err != nil {
		return errors.Wrapf(err, errors.CodeShortWrite, "wrote %d of %d bytes", n, len(p))
	}
	return errors.Newf(errors.CodeShortWrite, "wrote %d of %d bytes", n, len(p))
}

// Close implements Buffer. In write mode pending bytes are flushed first;
// the descriptor is closed in any case.
func (b *FdBuffer) Close() error {
	if b.closed {
		return nil
	}
	var firstErr error
	if b.mode == modeWrite && !b.failed {
		firstErr = b.sync()
	}
	if err := b.fd.Close(); err != nil && firstErr == nil {
		firstErr = errors.Wrap(err, errors.CodeIO, "close failed")
	}
	b.closed = true
	b.buf = nil
	b.start, b.end = 0, 0
	return firstErr
}

// Compile-time interface checks.
var (
	_ Buffer  = (*FdBuffer)(nil)
	_ Flusher = (*FdBuffer)(nil)
)
