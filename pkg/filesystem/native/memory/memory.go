package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"golang.org/x/text/cases"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
)

// maximumLinkDepth is the maximum number of symbolic links followed while
// resolving a single path.
const maximumLinkDepth = 31

// node is a single filesystem entry.
type node struct {
	// name is the entry name as created.
	name string
	// attributes is the attribute mask.
	attributes native.Attributes
	// creation is the creation timestamp.
	creation native.FileTime
	// lastAccess is the last access timestamp.
	lastAccess native.FileTime
	// lastWrite is the last modification timestamp.
	lastWrite native.FileTime
	// content is the file content.
	content []byte
	// target is the symbolic link target.
	target string
	// children are the directory entries, keyed by folded name.
	children map[string]*node
	// handles is the number of open handles referencing the entry.
	handles int
}

// isDirectory returns whether or not the entry is a directory or a directory
// symbolic link.
func (n *node) isDirectory() bool {
	return n.attributes&native.AttributeDirectory != 0
}

// isSymbolicLink returns whether or not the entry is a symbolic link.
func (n *node) isSymbolicLink() bool {
	return n.attributes&native.AttributeReparsePoint != 0
}

// findData creates a find record for the entry under the specified name.
func (n *node) findData(name string) *native.FindData {
	data := &native.FindData{
		Attributes:     n.attributes,
		CreationTime:   n.creation,
		LastAccessTime: n.lastAccess,
		LastWriteTime:  n.lastWrite,
		Name:           name,
	}
	if n.isSymbolicLink() {
		data.Reserved0 = native.ReparseTagSymbolicLink
	} else if !n.isDirectory() {
		data.SetSize(uint64(len(n.content)))
	}
	return data
}

// volume is a registered drive or share.
type volume struct {
	// root is the root directory.
	root *node
	// extended is the extended form of the root path.
	extended string
	// share indicates whether or not the volume is a network share.
	share bool
}

// cursor is an open find cursor.
type cursor struct {
	// directory is the extended path of the directory being enumerated.
	directory string
	// entries are the remaining entries.
	entries []*native.FindData
}

// handle is an open handle.
type handle struct {
	// target is the referenced entry.
	target *node
	// access is the access mask.
	access native.Access
	// offset is the read/write offset.
	offset int
}

// failure is a pending injected failure.
type failure struct {
	// operation is the operation to fail.
	operation Operation
	// path is the folded extended path to match, or empty to match any path.
	path string
	// code is the failure code.
	code native.Errno
}

// FileSystem is an in-memory implementation of native.Interface with NTFS-like
// semantics: names are case-insensitive and case-preserving, non-root
// directories report "." and ".." entries, and symbolic links are reparse
// points carrying the symbolic link tag. Only extended-length paths are
// accepted by the native.Interface methods. It is safe for concurrent usage.
type FileSystem struct {
	// lock serializes access to all fields.
	lock sync.Mutex
	// folder folds names for case-insensitive comparison.
	folder cases.Caser
	// volumes are the registered drives and shares, keyed by folded root.
	volumes map[string]*volume
	// workingDirectory is the reported working directory.
	workingDirectory string
	// now is the clock used for timestamps.
	now func() time.Time
	// nextIdentifier is the next cursor or handle identifier.
	nextIdentifier uintptr
	// cursors are the open cursors.
	cursors map[native.Cursor]*cursor
	// handles are the open handles.
	handles map[native.Handle]*handle
	// failures are the pending injected failures.
	failures []failure
}

// New creates a new empty in-memory filesystem with no volumes.
func New() *FileSystem {
	return &FileSystem{
		folder:         cases.Fold(),
		volumes:        make(map[string]*volume),
		now:            time.Now,
		nextIdentifier: 1,
		cursors:        make(map[native.Cursor]*cursor),
		handles:        make(map[native.Handle]*handle),
	}
}

// fold folds a string for case-insensitive comparison. The lock must be held.
func (f *FileSystem) fold(value string) string {
	return f.folder.String(value)
}

// timestamp returns the current time as a FileTime. The lock must be held.
func (f *FileSystem) timestamp() native.FileTime {
	return native.NewFileTime(f.now())
}

// newNode creates an entry stamped with the current time. The lock must be
// held.
func (f *FileSystem) newNode(name string, attributes native.Attributes) *node {
	now := f.timestamp()
	result := &node{
		name:       name,
		attributes: attributes,
		creation:   now,
		lastAccess: now,
		lastWrite:  now,
	}
	if attributes&native.AttributeDirectory != 0 && attributes&native.AttributeReparsePoint == 0 {
		result.children = make(map[string]*node)
	}
	return result
}

// SetClock replaces the clock used for timestamps.
func (f *FileSystem) SetClock(now func() time.Time) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.now = now
}

// AddVolume registers a local drive with the specified letter.
func (f *FileSystem) AddVolume(letter byte) {
	f.lock.Lock()
	defer f.lock.Unlock()
	drive := strings.ToUpper(string(letter)) + ":"
	f.volumes[f.fold(drive)] = &volume{
		root:     f.newNode(drive, native.AttributeDirectory),
		extended: paths.LocalExtendedPrefix + drive + `\`,
	}
	if f.workingDirectory == "" {
		f.workingDirectory = drive + `\`
	}
}

// AddShare registers a network share.
func (f *FileSystem) AddShare(server, share string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	root := server + `\` + share
	f.volumes[f.fold(root)] = &volume{
		root:     f.newNode(share, native.AttributeDirectory),
		extended: paths.ShareExtendedPrefix + root,
		share:    true,
	}
}

// SetWorkingDirectory sets the reported working directory.
func (f *FileSystem) SetWorkingDirectory(path string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.workingDirectory = path
}

// FailNext arranges for the next invocation of operation against path (in
// either form) to fail with code. For FindFirst and FindNext, path is the
// directory being enumerated. An empty path matches any path.
func (f *FileSystem) FailNext(operation Operation, path string, code native.Errno) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if path != "" {
		path = f.fold(paths.ToExtended(path))
	}
	f.failures = append(f.failures, failure{operation, path, code})
}

// injected consumes and returns a pending failure matching the invocation, if
// any. The lock must be held.
func (f *FileSystem) injected(operation Operation, path string) error {
	folded := f.fold(paths.ToExtended(path))
	for i, pending := range f.failures {
		if pending.operation == operation && (pending.path == "" || pending.path == folded) {
			f.failures = append(f.failures[:i], f.failures[i+1:]...)
			return pending.code
		}
	}
	return nil
}

// OpenCursors returns the number of find cursors that haven't been closed.
func (f *FileSystem) OpenCursors() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.cursors)
}

// OpenHandles returns the number of handles that haven't been closed.
func (f *FileSystem) OpenHandles() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.handles)
}

// location is a path split into its volume and components.
type location struct {
	// volume is the containing volume.
	volume *volume
	// components are the path components below the volume root.
	components []string
}

// split validates an extended path and splits it into its volume and
// components. The lock must be held.
func (f *FileSystem) split(path string) (*location, error) {
	result, err := paths.Parse(path)
	if err != nil || result.Form != paths.FormExtended {
		return nil, native.ErrorInvalidName
	}

	var root, remainder string
	if result.Location == paths.LocationLocal {
		root, remainder = result.Regular[:2], result.Regular[3:]
	} else {
		segments := strings.SplitN(result.Regular[len(paths.ShareRegularPrefix):], `\`, 3)
		root = segments[0] + `\` + segments[1]
		if len(segments) == 3 {
			remainder = segments[2]
		}
	}

	volume, ok := f.volumes[f.fold(root)]
	if !ok {
		if result.Location == paths.LocationShare {
			return nil, native.ErrorBadNetName
		}
		return nil, native.ErrorPathNotFound
	}
	var components []string
	if remainder != "" {
		components = strings.Split(remainder, `\`)
	}
	return &location{volume, components}, nil
}

// entry is the result of resolving a path.
type entry struct {
	// parent is the containing directory, or nil for a volume root.
	parent *node
	// name is the final component as supplied.
	name string
	// key is the folded final component.
	key string
	// node is the entry itself, or nil if it doesn't exist.
	node *node
}

// resolve resolves a path to an entry. Intermediate symbolic links are always
// followed, while a final symbolic link is followed only if follow is true.
// Missing intermediate components yield ErrorPathNotFound, while a missing
// final component yields an entry with a nil node. The lock must be held.
func (f *FileSystem) resolve(path string, follow bool, depth int) (*entry, error) {
	if depth > maximumLinkDepth {
		return nil, native.ErrorCantResolveFilename
	}

	location, err := f.split(path)
	if err != nil {
		return nil, err
	}

	current := location.volume.root
	currentPath := location.volume.extended
	if len(location.components) == 0 {
		return &entry{node: current}, nil
	}
	for i, component := range location.components {
		// Follow links at intermediate components.
		if current.isSymbolicLink() {
			target, err := f.follow(current, currentPath, depth)
			if err != nil {
				return nil, err
			}
			current = target
		}
		if !current.isDirectory() {
			return nil, native.ErrorPathNotFound
		}

		// Handle the final component.
		key := f.fold(component)
		child := current.children[key]
		if i == len(location.components)-1 {
			result := &entry{parent: current, name: component, key: key, node: child}
			if follow && child != nil && child.isSymbolicLink() {
				target, err := f.follow(child, paths.Combine(currentPath, component), depth)
				if err != nil {
					return nil, err
				}
				result.node = target
			}
			return result, nil
		}

		// Descend.
		if child == nil {
			return nil, native.ErrorPathNotFound
		}
		current = child
		currentPath = paths.Combine(currentPath, component)
	}
	panic("unreachable")
}

// follow resolves the target of a symbolic link located at linkPath. The lock
// must be held.
func (f *FileSystem) follow(link *node, linkPath string, depth int) (*node, error) {
	target := link.target
	if result, err := paths.Parse(target); err == nil {
		target = result.Extended
	} else if parsed, err := paths.Parse(linkPath); err != nil || parsed.Location != paths.LocationLocal {
		return nil, native.ErrorPathNotFound
	} else if resolved, err := paths.Resolve(target, parsed.Parent); err != nil {
		return nil, native.ErrorPathNotFound
	} else {
		target = paths.ToExtended(resolved)
	}
	resolved, err := f.resolve(target, true, depth+1)
	if err != nil {
		return nil, err
	} else if resolved.node == nil {
		return nil, native.ErrorFileNotFound
	}
	return resolved.node, nil
}

// lookup resolves a path that must exist. The lock must be held.
func (f *FileSystem) lookup(path string, follow bool) (*entry, error) {
	result, err := f.resolve(path, follow, 0)
	if err != nil {
		return nil, err
	} else if result.node == nil {
		return nil, native.ErrorFileNotFound
	}
	return result, nil
}

// patternEscaper escapes the doublestar metacharacters that have no meaning in
// find patterns, leaving only the * and ? wildcards.
var patternEscaper = strings.NewReplacer(
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

// matches returns whether or not a name matches a find pattern, ignoring
// case. The lock must be held.
func (f *FileSystem) matches(pattern, name string) bool {
	pattern = f.fold(pattern)
	if pattern == "*.*" {
		pattern = "*"
	}
	matched, err := doublestar.Match(patternEscaper.Replace(pattern), f.fold(name))
	return err == nil && matched
}

// sortedChildren returns the children of a directory ordered by folded name.
func sortedChildren(directory *node) []string {
	keys := make([]string, 0, len(directory.children))
	for key := range directory.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
