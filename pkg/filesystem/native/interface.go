package native

import (
	"github.com/pkg/errors"
)

// ErrUnsupportedPlatform is returned by New on platforms without a native
// implementation.
var ErrUnsupportedPlatform = errors.New("native long path access unsupported on this platform")

// Access is a handle access mask.
type Access uint32

const (
	// AccessRead requests read access.
	AccessRead Access = 0x80000000
	// AccessWrite requests write access.
	AccessWrite Access = 0x40000000
	// AccessReadWrite requests read and write access.
	AccessReadWrite = AccessRead | AccessWrite
)

// Share is a handle sharing mode.
type Share uint32

const (
	// ShareRead allows concurrent read access.
	ShareRead Share = 0x1
	// ShareWrite allows concurrent write access.
	ShareWrite Share = 0x2
	// ShareDelete allows concurrent deletion and renaming.
	ShareDelete Share = 0x4
	// ShareAll combines all sharing modes.
	ShareAll = ShareRead | ShareWrite | ShareDelete
)

// Disposition specifies the behavior of OpenHandle with respect to existing
// and missing files.
type Disposition uint32

const (
	// CreateNew creates a new file and fails if it already exists.
	CreateNew Disposition = 1
	// CreateAlways creates a new file, truncating any existing file.
	CreateAlways Disposition = 2
	// OpenExisting opens an existing file and fails if it doesn't exist.
	OpenExisting Disposition = 3
	// OpenAlways opens a file, creating it if it doesn't exist.
	OpenAlways Disposition = 4
	// TruncateExisting opens and truncates an existing file.
	TruncateExisting Disposition = 5
)

// Handle is an open file or directory handle.
type Handle uintptr

// Cursor is an open find cursor.
type Cursor uintptr

// Interface is the set of path-based operations that the long path layer
// requires from the operating system. All paths are in extended-length form.
// All failures are reported as Errno values. Implementations must be safe for
// concurrent usage.
type Interface interface {
	// GetAttributes returns the attribute mask of path. On failure it returns
	// InvalidAttributes along with the error.
	GetAttributes(path string) (Attributes, error)
	// SetAttributes replaces the attribute mask of path.
	SetAttributes(path string, attributes Attributes) error
	// CreateDirectory creates a single directory. The parent must exist.
	CreateDirectory(path string) error
	// RemoveDirectory removes an empty directory or a directory symbolic link.
	RemoveDirectory(path string) error
	// DeleteFile removes a file or a file symbolic link.
	DeleteFile(path string) error
	// CopyFile copies a file's content and attributes.
	CopyFile(source, target string, failIfExists bool) error
	// MoveFile renames a file or directory. It fails if the target exists.
	MoveFile(source, target string) error
	// FindFirst opens a find cursor for pattern (a directory path followed by
	// a final wildcard component) and returns its first entry. If nothing
	// matches it fails with ErrorFileNotFound and no cursor is opened.
	FindFirst(pattern string) (Cursor, *FindData, error)
	// FindNext returns the next entry of a cursor, or ErrorNoMoreFiles.
	FindNext(cursor Cursor) (*FindData, error)
	// FindClose releases a cursor.
	FindClose(cursor Cursor) error
	// OpenHandle opens a handle to a file or directory.
	OpenHandle(path string, access Access, share Share, disposition Disposition) (Handle, error)
	// SetTimes updates the timestamps of an open handle. Nil timestamps are
	// left unchanged.
	SetTimes(handle Handle, creation, lastAccess, lastWrite *FileTime) error
	// ReadHandle reads from an open handle. It returns 0 and no error at end
	// of file.
	ReadHandle(handle Handle, buffer []byte) (int, error)
	// WriteHandle writes to an open handle.
	WriteHandle(handle Handle, buffer []byte) (int, error)
	// CloseHandle releases a handle.
	CloseHandle(handle Handle) error
	// CreateSymbolicLink creates a symbolic link at link pointing to target.
	// The directory flag selects a directory link.
	CreateSymbolicLink(link, target string, directory bool) error
	// ReadSymbolicLink returns the target of a symbolic link.
	ReadSymbolicLink(path string) (string, error)
	// LogicalDrives returns the roots of the mounted local volumes, e.g. C:\.
	LogicalDrives() ([]string, error)
	// WorkingDirectory returns the process working directory.
	WorkingDirectory() (string, error)
}
