package filesystem

import (
	"time"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
)

// EntryType identifies the type of a filesystem entry.
type EntryType uint8

const (
	// EntryTypeFile indicates a file (or a file symbolic link).
	EntryTypeFile EntryType = iota
	// EntryTypeDirectory indicates a directory (or a directory symbolic link).
	EntryTypeDirectory
)

// String provides a human-readable representation of an entry type.
func (t EntryType) String() string {
	switch t {
	case EntryTypeFile:
		return "file"
	case EntryTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Metadata is a point-in-time snapshot of a directory entry, captured from a
// single find record. It isn't modified after creation.
type Metadata struct {
	// Name is the entry name.
	Name string
	// Attributes is the attribute mask.
	Attributes native.Attributes
	// CreationTime is the creation time in UTC.
	CreationTime time.Time
	// LastAccessTime is the last access time in UTC.
	LastAccessTime time.Time
	// LastWriteTime is the last modification time in UTC.
	LastWriteTime time.Time
	// Size is the size in bytes. It's only meaningful for files.
	Size uint64
	// SymbolicLink indicates whether or not the entry is a symbolic link.
	SymbolicLink bool
}

// newMetadata creates metadata from a find record.
func newMetadata(data *native.FindData) *Metadata {
	return &Metadata{
		Name:           data.Name,
		Attributes:     data.Attributes,
		CreationTime:   data.CreationTime.Time(),
		LastAccessTime: data.LastAccessTime.Time(),
		LastWriteTime:  data.LastWriteTime.Time(),
		Size:           data.Size(),
		SymbolicLink:   data.IsSymbolicLink(),
	}
}

// IsDirectory returns whether or not the entry is a directory.
func (m *Metadata) IsDirectory() bool {
	return m.Attributes.IsDirectory()
}

// EntryType returns the entry type.
func (m *Metadata) EntryType() EntryType {
	if m.IsDirectory() {
		return EntryTypeDirectory
	}
	return EntryTypeFile
}
