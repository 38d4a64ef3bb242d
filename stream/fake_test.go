package stream

import (
	stderrors "errors"
	"io"
)

// fakeDescriptor is an in-memory Descriptor that records every call.
type fakeDescriptor struct {
	data     []byte
	pos      int64
	reads    []int
	writes   []int
	seeks    int
	closes   int
	maxWrite int // bytes accepted per write; 0 means unlimited
	readErr  error
}

func newFakeDescriptor(data []byte) *fakeDescriptor {
	return &fakeDescriptor{data: data}
}

func (f *fakeDescriptor) Read(p []byte) (int, error) {
	f.reads = append(f.reads, len(p))
	if f.readErr != nil {
		return 0, f.readErr
	}
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *fakeDescriptor) Write(p []byte) (int, error) {
	n := len(p)
	if f.maxWrite > 0 && n > f.maxWrite {
		n = f.maxWrite
	}
	f.writes = append(f.writes, len(p))
	end := f.pos + int64(n)
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.pos:end], p[:n])
	f.pos = end
	return n, nil
}

func (f *fakeDescriptor) Seek(offset int64, whence int) (int64, error) {
	f.seeks++
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = f.pos + offset
	case io.SeekEnd:
		target = int64(len(f.data)) + offset
	}
	if target < 0 {
		return -1, stderrors.New("invalid argument")
	}
	f.pos = target
	return target, nil
}

func (f *fakeDescriptor) Close() error {
	f.closes++
	return nil
}

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
