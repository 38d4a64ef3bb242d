package core

// FileType classifies a directory entry.
type FileType int

const (
	// FileTypeRegular is a regular file.
	FileTypeRegular FileType = iota
	// FileTypeDirectory is a directory.
	FileTypeDirectory
)

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeRegular:
		return "regular"
	case FileTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// DirectoryEntry is one result of a directory enumeration.
type DirectoryEntry struct {
	Name string
	Type FileType
}

// IsDir reports whether the entry is a directory.
func (e DirectoryEntry) IsDir() bool {
	return e.Type == FileTypeDirectory
}

// Feature is an optional backend capability.
type Feature int

const (
	// FeatureWrite indicates output streams can be created.
	FeatureWrite Feature = iota
	// FeatureMakeDirectory indicates directories can be created.
	FeatureMakeDirectory
	// FeatureSymlink indicates symbolic links are understood.
	FeatureSymlink
)

// String returns a string representation of the Feature.
func (f Feature) String() string {
	switch f {
	case FeatureWrite:
		return "write"
	case FeatureMakeDirectory:
		return "mkdir"
	case FeatureSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// OpenMode is a set of flags passed to CreateOutputBuffer.
type OpenMode int

const (
	// ModeRead requests read access.
	ModeRead OpenMode = 1 << iota
	// ModeWrite requests write access.
	ModeWrite
	// ModeAppend positions writes at the end of existing content.
	ModeAppend
	// ModeTruncate discards existing content.
	ModeTruncate
)

// DefaultWriteMode truncates the target before writing.
const DefaultWriteMode = ModeWrite | ModeTruncate

// Has reports whether all flags in f are set.
func (m OpenMode) Has(f OpenMode) bool {
	return m&f == f
}

// Append reports whether the mode asks for appending.
func (m OpenMode) Append() bool {
	return m.Has(ModeAppend)
}
