package bridge

import (
	"io"

	"github.com/jmgilman/go/vfs/stream"
)

// fakeHost records every call made through the bridge.
type fakeHost struct {
	objects  map[string]*fakeObject
	resolves []string
	calls    int
	live     int
}

type fakeObject struct {
	host     *fakeHost
	dir      bool
	data     []byte
	children []string
	childDir []bool
	openErr  error
	readErr  error
	appended *bool
	last     *fakeDescriptor
}

func newFakeHost() *fakeHost {
	return &fakeHost{objects: map[string]*fakeObject{}}
}

func (h *fakeHost) addFile(path, content string) *fakeObject {
	o := &fakeObject{host: h, data: []byte(content)}
	h.objects[path] = o
	return o
}

func (h *fakeHost) addDir(path string, children map[string]bool) *fakeObject {
	o := &fakeObject{host: h, dir: true}
	for name, isDir := range children {
		o.children = append(o.children, name)
		o.childDir = append(o.childDir, isDir)
	}
	h.objects[path] = o
	return o
}

func (h *fakeHost) ResolveHandle(path string) Handle {
	h.resolves = append(h.resolves, path)
	if o, ok := h.objects[path]; ok {
		return o
	}
	return nil
}

func (o *fakeObject) IsFile() bool      { o.host.calls++; return !o.dir }
func (o *fakeObject) IsDirectory() bool { o.host.calls++; return o.dir }
func (o *fakeObject) Exists() bool      { o.host.calls++; return true }
func (o *fakeObject) Size() int64       { o.host.calls++; return int64(len(o.data)) }

func (o *fakeObject) OpenForRead() (stream.Descriptor, error) {
	o.host.calls++
	if o.openErr != nil {
		return nil, o.openErr
	}
	o.last = &fakeDescriptor{obj: o}
	return o.last, nil
}

func (o *fakeObject) OpenForWrite(appendMode bool) (stream.Descriptor, error) {
	o.host.calls++
	o.appended = &appendMode
	if !appendMode {
		o.data = nil
	}
	return &fakeDescriptor{obj: o, pos: int64(len(o.data))}, nil
}

func (o *fakeObject) ListDirectory() (Listing, error) {
	o.host.calls++
	return fakeListing{o}, nil
}

type fakeListing struct {
	obj *fakeObject
}

func (l fakeListing) Len() int { return len(l.obj.children) }

func (l fakeListing) Name(i int) HostString {
	l.obj.host.live++
	return &fakeString{host: l.obj.host, value: l.obj.children[i]}
}

func (l fakeListing) IsDirectory(i int) bool { return l.obj.childDir[i] }

type fakeString struct {
	host  *fakeHost
	value string
}

func (s *fakeString) Value() string { return s.value }
func (s *fakeString) Release()      { s.host.live-- }

// fakeDescriptor reads and writes the object's data and counts reads.
type fakeDescriptor struct {
	obj    *fakeObject
	pos    int64
	reads  int
	closed int
}

func (d *fakeDescriptor) Read(p []byte) (int, error) {
	d.reads++
	if d.obj.readErr != nil {
		return 0, d.obj.readErr
	}
	if d.pos >= int64(len(d.obj.data)) {
		return 0, io.EOF
	}
	n := copy(p, d.obj.data[d.pos:])
	d.pos += int64(n)
	return n, nil
}

func (d *fakeDescriptor) Write(p []byte) (int, error) {
	end := d.pos + int64(len(p))
	if end > int64(len(d.obj.data)) {
		d.obj.data = append(d.obj.data, make([]byte, end-int64(len(d.obj.data)))...)
	}
	copy(d.obj.data[d.pos:], p)
	d.pos = end
	return len(p), nil
}

func (d *fakeDescriptor) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekCurrent:
		offset += d.pos
	case io.SeekEnd:
		offset += int64(len(d.obj.data))
	}
	d.pos = offset
	return offset, nil
}

func (d *fakeDescriptor) Close() error {
	d.closed++
	return nil
}
