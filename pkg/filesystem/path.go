package filesystem

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
	"github.com/mutagen-io/longpath/pkg/must"
)

// metadataState is the resolution state of a path's cached metadata.
type metadataState uint8

const (
	// metadataUnresolved indicates that metadata hasn't been fetched.
	metadataUnresolved metadataState = iota
	// metadataResolved indicates that metadata has been fetched and cached.
	metadataResolved
)

// metadataCache holds the lazily fetched metadata of a path. Once resolved, it
// is never refreshed. Failed fetches leave it unresolved.
type metadataCache struct {
	// lock serializes access to the cache.
	lock sync.Mutex
	// state is the resolution state.
	state metadataState
	// metadata is the cached metadata, set only if state is metadataResolved.
	metadata *Metadata
}

// Path is an immutable descriptor for a single filesystem location. Apart from
// Exists, queries against the underlying entry are made at most once, so
// callers needing fresh state should obtain a new Path.
type Path struct {
	// filesystem is the filesystem to which the path belongs.
	filesystem *FileSystem
	// result is the decomposed path.
	result *paths.Result
	// cache is the metadata cache.
	cache metadataCache
}

// Path creates a descriptor for the specified path, which may be in regular or
// extended form or relative to the working directory. Local paths must be
// rooted at a mounted drive.
func (f *FileSystem) Path(path string) (*Path, error) {
	// Classify the path, falling back to resolution against the working
	// directory.
	result, err := paths.Parse(path)
	if err != nil {
		if err := paths.ValidateCharacters(path); err != nil {
			return nil, &PathError{Op: "resolve", Path: path, Err: err}
		}
		workingDirectory, err := f.native.WorkingDirectory()
		if err != nil {
			return nil, newNativeError("query working directory for", path, err)
		}
		if result, err = paths.ParseRelative(path, workingDirectory); err != nil {
			return nil, &PathError{Op: "resolve", Path: path, Err: err}
		}
	}

	// Verify that local paths reside on a mounted drive.
	if result.Location == paths.LocationLocal {
		if err := f.checkDrive(result); err != nil {
			return nil, err
		}
	}

	// Success.
	return &Path{filesystem: f, result: result}, nil
}

// checkDrive verifies that the root of a local path is a mounted drive.
func (f *FileSystem) checkDrive(result *paths.Result) error {
	root := result.Root
	if result.IsRoot {
		root = result.Regular
	}
	drives, err := f.native.LogicalDrives()
	if err != nil {
		return newNativeError("query drives for", root, err)
	}
	for _, drive := range drives {
		if strings.EqualFold(drive, root) {
			return nil
		}
	}
	return &PathError{Op: "resolve", Path: result.Regular, Err: ErrUnsupportedDrive}
}

// child creates a descriptor for an entry within the path. The child retains
// the form of its parent.
func (p *Path) child(name string) (*Path, error) {
	result, err := paths.Join(p.result, name)
	if err != nil {
		return nil, &PathError{Op: "resolve", Path: paths.Combine(p.Regular(), name), Err: err}
	}
	return &Path{filesystem: p.filesystem, result: result}, nil
}

// entry creates a descriptor for an enumerated entry within the path, seeding
// its cache with the entry's metadata.
func (p *Path) entry(metadata *Metadata) (*Path, error) {
	child, err := p.child(metadata.Name)
	if err != nil {
		return nil, err
	}
	child.cache.state = metadataResolved
	child.cache.metadata = metadata
	return child, nil
}

// derive creates a descriptor for a related regular path on the same volume,
// retaining the form of p.
func (p *Path) derive(regular string) (*Path, error) {
	if p.result.Form == paths.FormExtended {
		regular = paths.ToExtended(regular)
	}
	result, err := paths.Parse(regular)
	if err != nil {
		return nil, &PathError{Op: "resolve", Path: regular, Err: err}
	}
	return &Path{filesystem: p.filesystem, result: result}, nil
}

// Regular returns the regular (human-readable) form of the path.
func (p *Path) Regular() string {
	return p.result.Regular
}

// Extended returns the extended-length form of the path.
func (p *Path) Extended() string {
	return p.result.Extended
}

// Name returns the final component of the path, or an empty string for roots.
func (p *Path) Name() string {
	return p.result.Name
}

// ParentPath returns the regular form of the parent path, or an empty string
// for roots.
func (p *Path) ParentPath() string {
	return p.result.Parent
}

// RootPath returns the regular form of the root path, or an empty string for
// roots.
func (p *Path) RootPath() string {
	return p.result.Root
}

// IsRoot returns whether or not the path is a drive or share root.
func (p *Path) IsRoot() bool {
	return p.result.IsRoot
}

// Location returns whether the path is local or a share.
func (p *Path) Location() paths.Location {
	return p.result.Location
}

// Form returns the form in which the path was supplied.
func (p *Path) Form() paths.Form {
	return p.result.Form
}

// String returns the regular form of the path.
func (p *Path) String() string {
	return p.result.Regular
}

// Parent returns the parent path, or nil for roots.
func (p *Path) Parent() (*Path, error) {
	if p.result.IsRoot {
		return nil, nil
	}
	return p.derive(p.result.Parent)
}

// Root returns the root path, or nil for roots.
func (p *Path) Root() (*Path, error) {
	if p.result.IsRoot {
		return nil, nil
	}
	return p.derive(p.result.Root)
}

// Exists returns whether or not an entry exists at the path. Unlike the other
// queries, it's never cached.
func (p *Path) Exists() bool {
	attributes, err := p.filesystem.native.GetAttributes(p.Extended())
	return err == nil && attributes != native.InvalidAttributes
}

// Metadata returns the metadata of the entry at the path, fetching it on first
// usage. Roots have no metadata.
func (p *Path) Metadata() (*Metadata, error) {
	if p.result.IsRoot {
		return nil, newPathError("read metadata of", p, ErrUnsupportedOnRoot)
	}
	p.cache.lock.Lock()
	defer p.cache.lock.Unlock()
	if p.cache.state == metadataResolved {
		return p.cache.metadata, nil
	}
	metadata, err := p.filesystem.stat(p)
	if err != nil {
		return nil, err
	}
	p.cache.state = metadataResolved
	p.cache.metadata = metadata
	return metadata, nil
}

// Attributes returns the cached attribute mask of the entry at the path.
func (p *Path) Attributes() (native.Attributes, error) {
	metadata, err := p.Metadata()
	if err != nil {
		return native.InvalidAttributes, err
	}
	return metadata.Attributes, nil
}

// EntryType returns the type of the entry at the path. Roots are directories.
func (p *Path) EntryType() (EntryType, error) {
	if p.result.IsRoot {
		return EntryTypeDirectory, nil
	}
	metadata, err := p.Metadata()
	if err != nil {
		return 0, err
	}
	return metadata.EntryType(), nil
}

// IsSymbolicLink returns whether or not the entry at the path is a symbolic
// link. Roots are never symbolic links.
func (p *Path) IsSymbolicLink() (bool, error) {
	if p.result.IsRoot {
		return false, nil
	}
	metadata, err := p.Metadata()
	if err != nil {
		return false, err
	}
	return metadata.SymbolicLink, nil
}

// stat queries the metadata of a non-root path with a single find call.
func (f *FileSystem) stat(path *Path) (*Metadata, error) {
	if path.IsRoot() {
		return nil, newPathError("read metadata of", path, ErrUnsupportedOnRoot)
	} else if strings.ContainsAny(path.Name(), "*?") {
		return nil, newPathError("read metadata of", path, ErrInvalidPath)
	}
	cursor, data, err := f.native.FindFirst(path.Extended())
	if err != nil {
		if errors.Is(err, native.ErrorFileNotFound) || errors.Is(err, native.ErrorNoMoreFiles) {
			return nil, newPathError("read metadata of", path, ErrPathNotFound)
		}
		return nil, newNativeError("read metadata of", path.Extended(), err)
	}
	must.FindClose(f.native, cursor, f.logger)
	if data.IsSystemEntry() {
		return nil, newPathError("read metadata of", path, ErrPathNotFound)
	}
	return newMetadata(data), nil
}
