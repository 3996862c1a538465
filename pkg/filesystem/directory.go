package filesystem

import (
	"github.com/mutagen-io/longpath/pkg/filesystem/native"
)

// CreateDirectory creates the directory at path. If recursive is true, missing
// ancestors are created first, though a missing root can't be. An existing
// directory at path is treated as success.
func (f *FileSystem) CreateDirectory(path *Path, recursive bool) error {
	// Handle existing entries.
	if attributes, err := f.native.GetAttributes(path.Extended()); err == nil {
		if !attributes.IsDirectory() {
			return newPathError("create directory", path, ErrUnmatchedEntryType)
		}
		return nil
	} else if path.IsRoot() {
		return newPathError("create directory", path, ErrPathNotFound)
	}

	// Create missing ancestors.
	if recursive {
		parent, err := path.Parent()
		if err != nil {
			return err
		} else if !parent.Exists() {
			if parent.IsRoot() {
				return newPathError("create directory", parent, ErrPathNotFound)
			} else if err := f.CreateDirectory(parent, true); err != nil {
				return err
			}
		}
	}

	// Create the directory.
	if err := f.native.CreateDirectory(path.Extended()); err != nil {
		return newNativeError("create directory", path.Extended(), err)
	}
	f.logger.Debugf("Created directory %s", path)
	return nil
}

// DeleteDirectory removes the directory at path. If recursive is true, its
// contents are removed first: all files throughout the tree, then each
// subdirectory. Symbolic links to directories are removed without being
// descended. A failure midway leaves the entries removed so far absent, and an
// entry that vanishes mid-removal is reported as a failure.
func (f *FileSystem) DeleteDirectory(path *Path, recursive bool) error {
	if path.IsRoot() {
		return newPathError("delete directory", path, ErrUnsupportedOnRoot)
	}
	metadata, err := f.stat(path)
	if err != nil {
		return err
	} else if !metadata.IsDirectory() {
		return newPathError("delete directory", path, ErrUnmatchedEntryType)
	}
	return f.deleteDirectory(path, metadata, recursive)
}

// deleteDirectory implements DeleteDirectory for a directory whose metadata
// has been loaded.
func (f *FileSystem) deleteDirectory(path *Path, metadata *Metadata, recursive bool) error {
	// Remove the contents.
	if recursive && !metadata.SymbolicLink {
		if err := f.DeleteFiles(path, true); err != nil {
			return err
		}
		for entry, err := range f.Enumerate(path, EnumerateOptions{Filter: FilterDirectories}) {
			if err != nil {
				return err
			} else if err := f.deleteDirectory(entry.Path, entry.Metadata, true); err != nil {
				return err
			}
		}
	}

	// Remove the now empty directory.
	if metadata.Attributes.Has(native.AttributeReadOnly) {
		if err := f.native.SetAttributes(path.Extended(), metadata.Attributes&^native.AttributeReadOnly); err != nil {
			return newNativeError("clear read-only attribute of", path.Extended(), err)
		}
	}
	if err := f.native.RemoveDirectory(path.Extended()); err != nil {
		return newNativeError("delete directory", path.Extended(), err)
	}
	f.logger.Debugf("Deleted directory %s", path)
	return nil
}

// DeleteFiles removes the files within directory, throughout its tree if
// recursive is true. Directories are left in place.
func (f *FileSystem) DeleteFiles(directory *Path, recursive bool) error {
	options := EnumerateOptions{Recursive: recursive}
	for file, err := range f.EnumerateFiles(directory, options) {
		if err != nil {
			return err
		} else if err := f.deleteFile(file.Path, file.Metadata.Attributes); err != nil {
			return err
		}
	}
	return nil
}
