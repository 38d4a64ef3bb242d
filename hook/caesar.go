package hook

import (
	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/stream"
)

// CaesarBuffer decodes a parent buffer by subtracting a fixed shift from
// every byte read. Seeks are forwarded unchanged. It is read-only and owns
// the parent.
type CaesarBuffer struct {
	parent stream.Buffer
	shift  byte
}

// NewCaesarBuffer wraps parent.
func NewCaesarBuffer(parent stream.Buffer, shift byte) *CaesarBuffer {
	return &CaesarBuffer{parent: parent, shift: shift}
}

// Read implements stream.Buffer.
func (c *CaesarBuffer) Read(p []byte) (int, error) {
	if c.parent == nil {
		return 0, errors.New(errors.CodeClosed, "read on closed buffer")
	}
	n, err := c.parent.Read(p)
	for i := range p[:n] {
		p[i] -= c.shift
	}
	return n, err
}

// Write implements stream.Buffer. It always fails.
func (c *CaesarBuffer) Write([]byte) (int, error) {
	return 0, errors.New(errors.CodeUnsupported, "caesar buffer is read-only")
}

// Seek implements stream.Buffer.
func (c *CaesarBuffer) Seek(offset int64, origin stream.SeekOrigin) (int64, error) {
	if c.parent == nil {
		return -1, errors.New(errors.CodeClosed, "seek on closed buffer")
	}
	return c.parent.Seek(offset, origin)
}

// Close closes the parent buffer.
func (c *CaesarBuffer) Close() error {
	if c.parent == nil {
		return nil
	}
	err := c.parent.Close()
	c.parent = nil
	return err
}

var _ stream.Buffer = (*CaesarBuffer)(nil)
