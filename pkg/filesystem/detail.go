package filesystem

import (
	"time"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
)

// FileDetail pairs a file path with its metadata.
type FileDetail struct {
	// Path is the file path.
	Path *Path
	// Metadata is the file metadata.
	Metadata *Metadata
}

// Name returns the file name.
func (d *FileDetail) Name() string {
	return d.Path.Name()
}

// FullName returns the regular form of the file path.
func (d *FileDetail) FullName() string {
	return d.Path.Regular()
}

// ExtendedName returns the extended-length form of the file path.
func (d *FileDetail) ExtendedName() string {
	return d.Path.Extended()
}

// Size returns the file size in bytes.
func (d *FileDetail) Size() uint64 {
	return d.Metadata.Size
}

// Length returns the file size in bytes as a signed value, for interoperation
// with io interfaces.
func (d *FileDetail) Length() int64 {
	return int64(d.Metadata.Size)
}

// Attributes returns the attribute mask.
func (d *FileDetail) Attributes() native.Attributes {
	return d.Metadata.Attributes
}

// IsReadOnly returns whether or not the read-only attribute is set.
func (d *FileDetail) IsReadOnly() bool {
	return d.Metadata.Attributes.Has(native.AttributeReadOnly)
}

// CreationTime returns the creation time in UTC.
func (d *FileDetail) CreationTime() time.Time {
	return d.Metadata.CreationTime
}

// LastAccessTime returns the last access time in UTC.
func (d *FileDetail) LastAccessTime() time.Time {
	return d.Metadata.LastAccessTime
}

// LastWriteTime returns the last modification time in UTC.
func (d *FileDetail) LastWriteTime() time.Time {
	return d.Metadata.LastWriteTime
}

// DirectoryDetail pairs a directory path with its metadata. For roots,
// Metadata is nil and the metadata accessors fail with ErrUnsupportedOnRoot.
type DirectoryDetail struct {
	// Path is the directory path.
	Path *Path
	// Metadata is the directory metadata.
	Metadata *Metadata
}

// Name returns the directory name, or an empty string for roots.
func (d *DirectoryDetail) Name() string {
	return d.Path.Name()
}

// FullName returns the regular form of the directory path.
func (d *DirectoryDetail) FullName() string {
	return d.Path.Regular()
}

// ExtendedName returns the extended-length form of the directory path.
func (d *DirectoryDetail) ExtendedName() string {
	return d.Path.Extended()
}

// metadata returns the metadata or fails for roots.
func (d *DirectoryDetail) metadata() (*Metadata, error) {
	if d.Metadata == nil {
		return nil, newPathError("read metadata of", d.Path, ErrUnsupportedOnRoot)
	}
	return d.Metadata, nil
}

// Attributes returns the attribute mask.
func (d *DirectoryDetail) Attributes() (native.Attributes, error) {
	metadata, err := d.metadata()
	if err != nil {
		return native.InvalidAttributes, err
	}
	return metadata.Attributes, nil
}

// CreationTime returns the creation time in UTC.
func (d *DirectoryDetail) CreationTime() (time.Time, error) {
	metadata, err := d.metadata()
	if err != nil {
		return time.Time{}, err
	}
	return metadata.CreationTime, nil
}

// LastAccessTime returns the last access time in UTC.
func (d *DirectoryDetail) LastAccessTime() (time.Time, error) {
	metadata, err := d.metadata()
	if err != nil {
		return time.Time{}, err
	}
	return metadata.LastAccessTime, nil
}

// LastWriteTime returns the last modification time in UTC.
func (d *DirectoryDetail) LastWriteTime() (time.Time, error) {
	metadata, err := d.metadata()
	if err != nil {
		return time.Time{}, err
	}
	return metadata.LastWriteTime, nil
}

// ReadFileDetail loads the detail of the file at path.
func (f *FileSystem) ReadFileDetail(path *Path) (*FileDetail, error) {
	if path.IsRoot() {
		return nil, newPathError("read file", path, ErrUnmatchedEntryType)
	}
	metadata, err := path.Metadata()
	if err != nil {
		return nil, err
	} else if metadata.IsDirectory() {
		return nil, newPathError("read file", path, ErrUnmatchedEntryType)
	}
	return &FileDetail{Path: path, Metadata: metadata}, nil
}

// ReadDirectoryDetail loads the detail of the directory at path. Roots must
// exist but carry no metadata.
func (f *FileSystem) ReadDirectoryDetail(path *Path) (*DirectoryDetail, error) {
	if path.IsRoot() {
		if !path.Exists() {
			return nil, newPathError("read directory", path, ErrPathNotFound)
		}
		return &DirectoryDetail{Path: path}, nil
	}
	metadata, err := path.Metadata()
	if err != nil {
		return nil, err
	} else if !metadata.IsDirectory() {
		return nil, newPathError("read directory", path, ErrUnmatchedEntryType)
	}
	return &DirectoryDetail{Path: path, Metadata: metadata}, nil
}
