// Package stream implements the byte-stream layer of the virtual filesystem.
//
// A Buffer is the low-level byte source or sink every backend hands out. Three
// variants exist:
//
//   - MemoryView: a non-owning window over caller storage. The caller keeps
//     the storage alive for as long as the view is in use.
//   - MemoryBuffer: an owning buffer; its storage lives and dies with it.
//   - FdBuffer: a fixed-size lookahead (read) or writeback (write) buffer over
//     a raw Descriptor such as a unix file descriptor, an *os.File or a
//     billy.File.
//
// InputStream and OutputStream wrap exactly one Buffer, add a display name,
// size caching and typed, endian-normalized reads and writes:
//
//	in, err := view.OpenInputStream("RPG_RT.ldb")
//	if err != nil {
//	    return err
//	}
//	defer in.Close()
//
//	var version uint32
//	if !stream.ReadIntoObj(in, &version) {
//	    // value not to be trusted
//	}
//
// Streams are single-owner and not safe for concurrent use. Detach transfers
// the buffer to a new owner; Close releases it. Both are idempotent.
package stream
