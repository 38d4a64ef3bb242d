// Package native provides a core.Backend over the host operating system's
// filesystem.
//
// Every query performs a fresh stat of the combined path. Streams are
// stream.FdBuffer values over raw descriptors: open(2) descriptors on unix
// platforms and *os.File elsewhere.
//
//	fs := native.New("/srv/games/Project")
//	view := core.NewView(fs)
//	in, err := view.OpenInputStream("RPG_RT.ldb")
package native
