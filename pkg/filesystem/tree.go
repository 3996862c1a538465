package filesystem

import (
	"sync"
)

// DirectoryMetadata is a fully materialized directory tree node. It isn't
// modified after construction, apart from memoization of its byte count.
type DirectoryMetadata struct {
	// Path is the directory path.
	Path *Path
	// Metadata is the directory metadata. It's nil for roots.
	Metadata *Metadata
	// Directories are the subdirectories in enumeration order. Symbolic links
	// to directories are included as nodes without contents.
	Directories []*DirectoryMetadata
	// Files are the files in enumeration order.
	Files []*FileDetail

	// bytesOnce guards the computation of bytes.
	bytesOnce sync.Once
	// bytes is the memoized aggregate size.
	bytes uint64
}

// Bytes returns the aggregate size of all files within the tree. It's computed
// on first usage and memoized.
func (d *DirectoryMetadata) Bytes() uint64 {
	d.bytesOnce.Do(func() {
		for _, file := range d.Files {
			d.bytes += file.Size()
		}
		for _, directory := range d.Directories {
			d.bytes += directory.Bytes()
		}
	})
	return d.bytes
}

// FileCount returns the number of files within the tree.
func (d *DirectoryMetadata) FileCount() int {
	count := len(d.Files)
	for _, directory := range d.Directories {
		count += directory.FileCount()
	}
	return count
}

// DirectoryCount returns the number of directories within the tree, excluding
// the node itself.
func (d *DirectoryMetadata) DirectoryCount() int {
	count := len(d.Directories)
	for _, directory := range d.Directories {
		count += directory.DirectoryCount()
	}
	return count
}

// IsSymbolicLink returns whether or not the node is a symbolic link to a
// directory.
func (d *DirectoryMetadata) IsSymbolicLink() bool {
	return d.Metadata != nil && d.Metadata.SymbolicLink
}

// TreeVisitor is the callback type for DirectoryMetadata.Walk. Exactly one of
// directory and file is non-nil. Returning false from a directory visit skips
// its contents.
type TreeVisitor func(depth int, directory *DirectoryMetadata, file *FileDetail) bool

// Walk visits the tree in pre-order, starting with the node itself at depth
// 0. Within each directory, files are visited before subdirectories.
func (d *DirectoryMetadata) Walk(visitor TreeVisitor) {
	d.walk(0, visitor)
}

// walk is the recursive implementation of Walk.
func (d *DirectoryMetadata) walk(depth int, visitor TreeVisitor) {
	if !visitor(depth, d, nil) {
		return
	}
	for _, file := range d.Files {
		visitor(depth+1, nil, file)
	}
	for _, directory := range d.Directories {
		directory.walk(depth+1, visitor)
	}
}

// Snapshot eagerly builds the full tree rooted at directory, with one native
// find pass per directory. Symbolic links to directories aren't descended.
// Under ErrorPolicySuppress, subdirectories that fail with a suppressible code
// are omitted from the tree.
func (f *FileSystem) Snapshot(directory *Path, policy ErrorPolicy) (*DirectoryMetadata, error) {
	// Load the metadata of the directory itself.
	var metadata *Metadata
	if !directory.IsRoot() {
		var err error
		if metadata, err = directory.Metadata(); err != nil {
			return nil, err
		} else if !metadata.IsDirectory() {
			return nil, newPathError("snapshot", directory, ErrUnmatchedEntryType)
		}
	}

	// Build the tree.
	result, err := f.snapshot(directory, metadata, policy)
	if err != nil {
		return nil, err
	} else if result == nil {
		result = &DirectoryMetadata{Path: directory, Metadata: metadata}
	}
	return result, nil
}

// snapshot is the recursive implementation of Snapshot. It returns nil if the
// directory failed with a suppressed failure.
func (f *FileSystem) snapshot(directory *Path, metadata *Metadata, policy ErrorPolicy) (*DirectoryMetadata, error) {
	result := &DirectoryMetadata{Path: directory, Metadata: metadata}
	var failure error
	_, err := f.find(directory, DefaultPattern, func(entry *Entry) bool {
		if !entry.IsDirectory() {
			result.Files = append(result.Files, &FileDetail{Path: entry.Path, Metadata: entry.Metadata})
			return true
		} else if entry.Metadata.SymbolicLink {
			result.Directories = append(result.Directories, &DirectoryMetadata{
				Path:     entry.Path,
				Metadata: entry.Metadata,
			})
			return true
		}
		child, err := f.snapshot(entry.Path, entry.Metadata, policy)
		if err != nil {
			failure = err
			return false
		} else if child != nil {
			result.Directories = append(result.Directories, child)
		}
		return true
	})
	if failure != nil {
		return nil, failure
	} else if err != nil {
		if f.suppressed(directory, err, policy) {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}
