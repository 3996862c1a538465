package filesystem

import (
	"io"
	"io/fs"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/must"
)

// DeleteFile removes the file (or file symbolic link) at path. The read-only
// attribute is cleared first if set.
func (f *FileSystem) DeleteFile(path *Path) error {
	if path.IsRoot() {
		return newPathError("delete file", path, ErrUnmatchedEntryType)
	}
	attributes, err := f.native.GetAttributes(path.Extended())
	if err != nil {
		return newNativeError("delete file", path.Extended(), err)
	} else if attributes.IsDirectory() {
		return newPathError("delete file", path, ErrUnmatchedEntryType)
	}
	return f.deleteFile(path, attributes)
}

// deleteFile implements DeleteFile given the current attributes of the file.
func (f *FileSystem) deleteFile(path *Path, attributes native.Attributes) error {
	if attributes.Has(native.AttributeReadOnly) {
		if err := f.native.SetAttributes(path.Extended(), attributes&^native.AttributeReadOnly); err != nil {
			return newNativeError("clear read-only attribute of", path.Extended(), err)
		}
	}
	if err := f.native.DeleteFile(path.Extended()); err != nil {
		return newNativeError("delete file", path.Extended(), err)
	}
	f.logger.Tracef("Deleted file %s", path)
	return nil
}

// CopyFile copies the file at source to target. Unless overwrite is true, the
// copy fails if target exists. Failures are reported against source.
func (f *FileSystem) CopyFile(source, target *Path, overwrite bool) error {
	if err := f.native.CopyFile(source.Extended(), target.Extended(), !overwrite); err != nil {
		return newNativeError("copy", source.Extended(), err)
	}
	f.logger.Debugf("Copied %s to %s", source, target)
	return nil
}

// MoveFile moves or renames the file or directory at source to target, which
// must not exist. Failures are reported against source.
func (f *FileSystem) MoveFile(source, target *Path) error {
	if err := f.native.MoveFile(source.Extended(), target.Extended()); err != nil {
		return newNativeError("move", source.Extended(), err)
	}
	f.logger.Debugf("Moved %s to %s", source, target)
	return nil
}

// File is an open file. It's not safe for concurrent usage.
type File struct {
	// native is the native interface that owns the handle.
	native native.Interface
	// handle is the native handle.
	handle native.Handle
	// path is the file path.
	path *Path
	// closed indicates whether or not the file has been closed.
	closed bool
}

// OpenFile opens the file at path with the specified access and disposition.
// Other handles may read the file while it's open.
func (f *FileSystem) OpenFile(path *Path, access native.Access, disposition native.Disposition) (*File, error) {
	if path.IsRoot() {
		return nil, newPathError("open", path, ErrUnmatchedEntryType)
	}
	handle, err := f.native.OpenHandle(path.Extended(), access, native.ShareRead, disposition)
	if err != nil {
		return nil, newNativeError("open", path.Extended(), err)
	}
	return &File{native: f.native, handle: handle, path: path}, nil
}

// ReadFile reads the entire content of the file at path.
func (f *FileSystem) ReadFile(path *Path) ([]byte, error) {
	file, err := f.OpenFile(path, native.AccessRead, native.OpenExisting)
	if err != nil {
		return nil, err
	}
	defer must.Close(file, f.logger)
	return io.ReadAll(file)
}

// WriteFile creates or truncates the file at path and writes content to it.
func (f *FileSystem) WriteFile(path *Path, content []byte) error {
	file, err := f.OpenFile(path, native.AccessWrite, native.CreateAlways)
	if err != nil {
		return err
	}
	_, err = file.Write(content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// Path returns the file path.
func (f *File) Path() *Path {
	return f.path
}

// Read implements io.Reader.Read.
func (f *File) Read(buffer []byte) (int, error) {
	if f.closed {
		return 0, newPathError("read", f.path, fs.ErrClosed)
	} else if len(buffer) == 0 {
		return 0, nil
	}
	n, err := f.native.ReadHandle(f.handle, buffer)
	if err != nil {
		return n, newNativeError("read", f.path.Extended(), err)
	} else if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements io.Writer.Write.
func (f *File) Write(buffer []byte) (int, error) {
	if f.closed {
		return 0, newPathError("write", f.path, fs.ErrClosed)
	}
	n, err := f.native.WriteHandle(f.handle, buffer)
	if err != nil {
		return n, newNativeError("write", f.path.Extended(), err)
	} else if n < len(buffer) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Close implements io.Closer.Close. Subsequent calls have no effect.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if err := f.native.CloseHandle(f.handle); err != nil {
		return newNativeError("close", f.path.Extended(), err)
	}
	return nil
}
