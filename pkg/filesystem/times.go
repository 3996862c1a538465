package filesystem

import (
	"time"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/must"
)

// Times is a set of timestamp updates. Nil fields are left unchanged.
type Times struct {
	// Created is the new creation time.
	Created *time.Time
	// Accessed is the new last access time.
	Accessed *time.Time
	// Written is the new last modification time.
	Written *time.Time
}

// fileTime converts an optional time to an optional FileTime.
func fileTime(t *time.Time) *native.FileTime {
	if t == nil {
		return nil
	}
	result := native.NewFileTime(*t)
	return &result
}

// SetTimes updates the timestamps of the file or directory at path using a
// handle scoped to the call.
func (f *FileSystem) SetTimes(path *Path, times Times) error {
	if path.IsRoot() {
		return newPathError("set times of", path, ErrUnsupportedOnRoot)
	} else if times.Created == nil && times.Accessed == nil && times.Written == nil {
		return nil
	}

	// Open a handle and ensure its closure.
	handle, err := f.native.OpenHandle(path.Extended(), native.AccessReadWrite, native.ShareAll, native.OpenExisting)
	if err != nil {
		return newNativeError("open", path.Extended(), err)
	}
	defer must.CloseHandle(f.native, handle, f.logger)

	// Set the times.
	err = f.native.SetTimes(handle, fileTime(times.Created), fileTime(times.Accessed), fileTime(times.Written))
	if err != nil {
		return newNativeError("set times of", path.Extended(), err)
	}
	return nil
}

// SetCreationTime updates the creation time of the entry at path.
func (f *FileSystem) SetCreationTime(path *Path, created time.Time) error {
	return f.SetTimes(path, Times{Created: &created})
}

// SetLastAccessTime updates the last access time of the entry at path.
func (f *FileSystem) SetLastAccessTime(path *Path, accessed time.Time) error {
	return f.SetTimes(path, Times{Accessed: &accessed})
}

// SetLastWriteTime updates the last modification time of the entry at path.
func (f *FileSystem) SetLastWriteTime(path *Path, written time.Time) error {
	return f.SetTimes(path, Times{Written: &written})
}
