package stream

import (
	"io"
	"testing"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputStream_SizePreservesPosition(t *testing.T) {
	data := sequence(40)

	for p := int64(0); p <= int64(len(data)); p++ {
		in := NewInputStream(NewFdReader(newFakeDescriptor(data), WithBufferSize(16)), "seq")
		_, err := in.SeekTo(p, SeekStart)
		require.NoError(t, err)

		assert.Equal(t, int64(len(data)), in.Size())
		assert.Equal(t, p, in.Position(), "position %d", p)
		require.NoError(t, in.Close())
	}
}

func TestInputStream_SizeAfterPartialRead(t *testing.T) {
	in := NewInputStream(NewFdReader(newFakeDescriptor(sequence(30)), WithBufferSize(8)), "seq")

	head := make([]byte, 3)
	_, err := io.ReadFull(in, head)
	require.NoError(t, err)

	assert.Equal(t, int64(30), in.Size())
	assert.Equal(t, int64(3), in.Position())

	next := make([]byte, 1)
	_, err = in.Read(next)
	require.NoError(t, err)
	assert.Equal(t, byte(3), next[0])
}

func TestInputStream_SizeIsCached(t *testing.T) {
	fd := newFakeDescriptor(sequence(10))
	in := NewInputStream(NewFdReader(fd), "seq")

	require.Equal(t, int64(10), in.Size())
	seeks := fd.seeks
	require.Equal(t, int64(10), in.Size())
	assert.Equal(t, seeks, fd.seeks)
}

func TestInputStream_CloseTwice(t *testing.T) {
	fd := newFakeDescriptor(sequence(10))
	in := NewInputStream(NewFdReader(fd), "seq")

	require.NoError(t, in.Close())
	require.NoError(t, in.Close())
	assert.True(t, in.Closed())
	assert.Equal(t, 1, fd.closes)

	assert.Equal(t, int64(-1), in.Position())
	assert.Equal(t, int64(-1), in.Position())
	assert.Equal(t, int64(-1), in.Size())

	_, err := in.Read(make([]byte, 1))
	assert.True(t, errors.HasCode(err, errors.CodeClosed))
	_, err = in.Seek(0, io.SeekStart)
	assert.Error(t, err)
	assert.Equal(t, 0, fd.seeks, "closed stream does no backend I/O")
}

func TestInputStream_Detach(t *testing.T) {
	view := NewMemoryView([]byte("abc"))
	in := NewInputStream(view, "abc")

	buf := in.Detach()
	assert.Same(t, view, buf)
	assert.True(t, in.Closed())
	assert.Nil(t, in.Detach())

	moved := NewInputStream(buf, in.Name())
	got, err := io.ReadAll(moved)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestInputStream_SeekWhence(t *testing.T) {
	in := NewInputStream(NewMemoryView([]byte("abcdef")), "m")

	pos, err := in.Seek(-2, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)

	_, err = in.Seek(0, 42)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput))
}

func TestInputStream_ZeroValue(t *testing.T) {
	var in InputStream
	assert.True(t, in.Closed())
	assert.Equal(t, int64(-1), in.Size())
	assert.NoError(t, in.Close())
}

func TestOutputStream_CloseFlushes(t *testing.T) {
	fd := newFakeDescriptor(nil)
	out := NewOutputStream(NewFdWriter(fd), "save")

	_, err := out.Write([]byte("slot 1"))
	require.NoError(t, err)
	assert.Empty(t, fd.data)

	require.NoError(t, out.Close())
	assert.Equal(t, "slot 1", string(fd.data))
	require.NoError(t, out.Close())

	_, err = out.Write([]byte("x"))
	assert.True(t, errors.HasCode(err, errors.CodeClosed))
	assert.Equal(t, int64(-1), out.Position())
	assert.Error(t, out.Flush())
}

func TestOutputStream_FlushAndPosition(t *testing.T) {
	fd := newFakeDescriptor(nil)
	out := NewOutputStream(NewFdWriter(fd), "save")

	_, err := out.Write([]byte("1234"))
	require.NoError(t, err)
	require.NoError(t, out.Flush())
	assert.Equal(t, "1234", string(fd.data))
	assert.Equal(t, int64(4), out.Position())
}

func TestOutputStream_FlushWithoutFlusher(t *testing.T) {
	out := NewOutputStream(NewMemoryBuffer(make([]byte, 2)), "mem")
	assert.NoError(t, out.Flush())
}

func TestOutputStream_Detach(t *testing.T) {
	fd := newFakeDescriptor(nil)
	out := NewOutputStream(NewFdWriter(fd), "save")
	_, err := out.Write([]byte("ab"))
	require.NoError(t, err)

	buf := out.Detach()
	require.NotNil(t, buf)
	assert.True(t, out.Closed())
	assert.Equal(t, 0, fd.closes)

	require.NoError(t, buf.Close())
	assert.Equal(t, "ab", string(fd.data))
}

func TestSeekOrigin_Whence(t *testing.T) {
	for _, o := range []SeekOrigin{SeekStart, SeekCurrent, SeekEnd} {
		back, ok := OriginFromWhence(o.Whence())
		require.True(t, ok)
		assert.Equal(t, o, back)
	}
	_, ok := OriginFromWhence(7)
	assert.False(t, ok)
	assert.Equal(t, "current", SeekCurrent.String())
}
