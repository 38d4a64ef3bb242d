package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "handle not found")

	require.NotNil(t, err)
	assert.Equal(t, CodeNotFound, err.Code())
	assert.Equal(t, "handle not found", err.Message())
	assert.Equal(t, "[NOT_FOUND] handle not found", err.Error())
	assert.Nil(t, err.Unwrap())
	assert.Nil(t, err.Context())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeShortWrite, "wrote %d of %d bytes", 3, 8)
	assert.Equal(t, "wrote 3 of 8 bytes", err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("bad file descriptor")
	err := Wrap(cause, CodeIO, "read failed")

	require.NotNil(t, err)
	assert.Equal(t, CodeIO, err.Code())
	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "[IO_ERROR] read failed: bad file descriptor", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeIO, "test"))
	assert.Nil(t, Wrapf(nil, CodeIO, "test %s", "arg"))
	assert.Nil(t, WrapWithContext(nil, CodeIO, "test", nil))
	assert.Nil(t, WithContext(nil, "k", "v"))
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path": "a.txt"}
	err := WrapWithContext(stderrors.New("x"), CodeBridge, "resolve failed", ctx)

	ctx["path"] = "mutated"
	assert.Equal(t, "a.txt", err.Context()["path"])

	got := err.Context()
	got["path"] = "mutated again"
	assert.Equal(t, "a.txt", err.Context()["path"])
}

func TestWithContext(t *testing.T) {
	err := WithContext(New(CodeNotFound, "open failed"), "path", "Save01.lsd")
	err = WithContext(err, "backend", "native")

	assert.Equal(t, CodeNotFound, err.Code())
	assert.Equal(t, "Save01.lsd", err.Context()["path"])
	assert.Equal(t, "native", err.Context()["backend"])
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("plain")
	err := WithContext(cause, "k", 1)

	assert.Equal(t, CodeUnknown, err.Code())
	assert.Equal(t, "plain", err.Message())
	assert.True(t, Is(err, cause))
}

func TestIs_FSSentinels(t *testing.T) {
	tests := []struct {
		name   string
		code   ErrorCode
		target error
		want   bool
	}{
		{"not found", CodeNotFound, fs.ErrNotExist, true},
		{"already exists", CodeAlreadyExists, fs.ErrExist, true},
		{"closed", CodeClosed, fs.ErrClosed, true},
		{"invalid", CodeInvalidInput, fs.ErrInvalid, true},
		{"io is not not-exist", CodeIO, fs.ErrNotExist, false},
		{"short write is not closed", CodeShortWrite, fs.ErrClosed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "x")
			assert.Equal(t, tt.want, stderrors.Is(err, tt.target))
		})
	}
}

func TestIs_WrappedSentinel(t *testing.T) {
	err := Wrap(New(CodeNotFound, "missing"), CodeBridge, "open failed")
	assert.True(t, Is(err, fs.ErrNotExist))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, CodeUnknown},
		{"standard error", stderrors.New("x"), CodeUnknown},
		{"platform error", New(CodeClosed, "closed"), CodeClosed},
		{"outermost wins", Wrap(New(CodeNotFound, "a"), CodeBridge, "b"), CodeBridge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(New(CodeShortWrite, "x"), CodeShortWrite))
	assert.False(t, HasCode(nil, CodeShortWrite))
}

func TestAs(t *testing.T) {
	var platformErr PlatformError
	require.True(t, As(Wrap(stderrors.New("x"), CodeIO, "y"), &platformErr))
	assert.Equal(t, CodeIO, platformErr.Code())
}
