// Package billy provides a core.Backend over any go-billy filesystem.
//
// This lets trees that live in memory (memfs), under a chroot on disk (osfs)
// or behind any other billy implementation be mounted next to the native and
// bridged backends. Streams are stream.FdBuffer values over billy.File
// handles, so buffering and seek behaviour match the other backends.
//
// Usage:
//
//	// In-memory tree, for tests or extracted archives
//	fs := billy.NewMemory()
//	view := core.NewView(fs)
//
//	// Disk tree confined to a root directory
//	fs := billy.NewLocal("/srv/games/Project", billy.WithReadOnly())
//
//	// Unwrap to seed or inspect the tree with billy utilities
//	util.WriteFile(fs.Unwrap(), "RPG_RT.ini", data, 0o644)
//
// # Thread Safety
//
// Backends are safe for shared use by several views. Streams are not safe
// for concurrent use.
package billy
