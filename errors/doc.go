// Package errors provides structured error values for the virtual filesystem.
//
// Every failure that crosses a package boundary in this module is a
// PlatformError: an error code, a human-readable message, optional context
// metadata and an optional cause. The package stays compatible with the
// standard library (errors.Is, errors.As, errors.Unwrap) and maps its codes
// onto the io/fs sentinels, so callers may test either form:
//
//	buf, err := backend.CreateInputBuffer("Save01.lsd")
//	if errors.Is(err, fs.ErrNotExist) {
//	    // no save data
//	}
//
// Query operations (IsFile, Exists, Filesize, ...) never return errors; they
// answer with false or -1. PlatformError is reserved for operations that
// produce a resource (streams, listings, mounts) or mutate configuration.
//
// # Creating errors
//
//	err := errors.New(errors.CodeNotFound, "handle not found")
//	err := errors.Newf(errors.CodeShortWrite, "wrote %d of %d bytes", n, len(p))
//
// # Wrapping errors
//
//	if err := unix.Close(fd); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "close failed")
//	}
//
// # Adding context
//
//	err = errors.WithContext(err, "path", name)
package errors
