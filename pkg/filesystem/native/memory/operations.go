package memory

import (
	"sort"
	"strings"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
)

// Operation identifies a native operation for failure injection.
type Operation string

const (
	OperationGetAttributes      Operation = "GetAttributes"
	OperationSetAttributes      Operation = "SetAttributes"
	OperationCreateDirectory    Operation = "CreateDirectory"
	OperationRemoveDirectory    Operation = "RemoveDirectory"
	OperationDeleteFile         Operation = "DeleteFile"
	OperationCopyFile           Operation = "CopyFile"
	OperationMoveFile           Operation = "MoveFile"
	OperationFindFirst          Operation = "FindFirst"
	OperationFindNext           Operation = "FindNext"
	OperationOpenHandle         Operation = "OpenHandle"
	OperationCreateSymbolicLink Operation = "CreateSymbolicLink"
	OperationReadSymbolicLink   Operation = "ReadSymbolicLink"
)

// typeAttributes are the attribute bits that can't be changed by
// SetAttributes.
const typeAttributes = native.AttributeDirectory | native.AttributeReparsePoint

// GetAttributes implements native.Interface.GetAttributes.
func (f *FileSystem) GetAttributes(path string) (native.Attributes, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationGetAttributes, path); err != nil {
		return native.InvalidAttributes, err
	}
	target, err := f.lookup(path, false)
	if err != nil {
		return native.InvalidAttributes, err
	}
	return target.node.attributes, nil
}

// SetAttributes implements native.Interface.SetAttributes.
func (f *FileSystem) SetAttributes(path string, attributes native.Attributes) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationSetAttributes, path); err != nil {
		return err
	}
	target, err := f.lookup(path, false)
	if err != nil {
		return err
	}
	updated := target.node.attributes&typeAttributes | attributes&^typeAttributes
	if updated&^native.AttributeNormal != 0 {
		updated &^= native.AttributeNormal
	} else {
		updated = native.AttributeNormal
	}
	target.node.attributes = updated
	return nil
}

// CreateDirectory implements native.Interface.CreateDirectory.
func (f *FileSystem) CreateDirectory(path string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationCreateDirectory, path); err != nil {
		return err
	}
	target, err := f.resolve(path, false, 0)
	if err != nil {
		return err
	} else if target.node != nil {
		return native.ErrorAlreadyExists
	}
	target.parent.children[target.key] = f.newNode(target.name, native.AttributeDirectory)
	return nil
}

// RemoveDirectory implements native.Interface.RemoveDirectory.
func (f *FileSystem) RemoveDirectory(path string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationRemoveDirectory, path); err != nil {
		return err
	}
	target, err := f.lookup(path, false)
	if err != nil {
		return err
	} else if target.parent == nil {
		return native.ErrorAccessDenied
	} else if !target.node.isDirectory() {
		return native.ErrorDirectory
	} else if len(target.node.children) > 0 {
		return native.ErrorDirNotEmpty
	} else if target.node.attributes&native.AttributeReadOnly != 0 || target.node.handles > 0 {
		return native.ErrorAccessDenied
	}
	delete(target.parent.children, target.key)
	return nil
}

// DeleteFile implements native.Interface.DeleteFile.
func (f *FileSystem) DeleteFile(path string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationDeleteFile, path); err != nil {
		return err
	}
	target, err := f.lookup(path, false)
	if err != nil {
		return err
	} else if target.parent == nil || target.node.isDirectory() {
		return native.ErrorAccessDenied
	} else if target.node.attributes&native.AttributeReadOnly != 0 {
		return native.ErrorAccessDenied
	} else if target.node.handles > 0 {
		return native.ErrorSharingViolation
	}
	delete(target.parent.children, target.key)
	return nil
}

// CopyFile implements native.Interface.CopyFile. Symbolic link sources are
// followed.
func (f *FileSystem) CopyFile(source, target string, failIfExists bool) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationCopyFile, source); err != nil {
		return err
	}

	// Resolve the source.
	from, err := f.lookup(source, true)
	if err != nil {
		return err
	} else if from.node.isDirectory() {
		return native.ErrorAccessDenied
	}

	// Resolve the target.
	to, err := f.resolve(target, false, 0)
	if err != nil {
		return err
	} else if to.parent == nil {
		return native.ErrorAccessDenied
	} else if to.node != nil {
		if failIfExists {
			return native.ErrorFileExists
		} else if to.node.isDirectory() || to.node.attributes&native.AttributeReadOnly != 0 {
			return native.ErrorAccessDenied
		} else if to.node.handles > 0 {
			return native.ErrorSharingViolation
		}
	}

	// Perform the copy.
	name := to.name
	if to.node != nil {
		name = to.node.name
	}
	copied := f.newNode(name, from.node.attributes|native.AttributeArchive)
	copied.attributes &^= native.AttributeNormal
	copied.content = append([]byte(nil), from.node.content...)
	copied.lastWrite = from.node.lastWrite
	to.parent.children[to.key] = copied
	return nil
}

// within returns whether or not candidate is ancestor itself or lies beneath
// ancestor.
func within(candidate, ancestor *node) bool {
	if candidate == ancestor {
		return true
	}
	for _, child := range ancestor.children {
		if within(candidate, child) {
			return true
		}
	}
	return false
}

// MoveFile implements native.Interface.MoveFile.
func (f *FileSystem) MoveFile(source, target string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationMoveFile, source); err != nil {
		return err
	}

	// Resolve the source.
	from, err := f.lookup(source, false)
	if err != nil {
		return err
	} else if from.parent == nil {
		return native.ErrorAccessDenied
	}

	// Resolve the target.
	to, err := f.resolve(target, false, 0)
	if err != nil {
		return err
	} else if to.parent == nil || to.node != nil {
		return native.ErrorAlreadyExists
	}

	// Verify that the move stays on a single volume and doesn't place a
	// directory inside itself.
	fromLocation, _ := f.split(source)
	toLocation, _ := f.split(target)
	if fromLocation.volume != toLocation.volume {
		return native.ErrorNotSameDevice
	} else if within(to.parent, from.node) {
		return native.ErrorSharingViolation
	}

	// Perform the move.
	delete(from.parent.children, from.key)
	from.node.name = to.name
	to.parent.children[to.key] = from.node
	return nil
}

// FindFirst implements native.Interface.FindFirst.
func (f *FileSystem) FindFirst(pattern string) (native.Cursor, *native.FindData, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	// Split the pattern into a directory and a wildcard.
	separator := strings.LastIndexByte(pattern, paths.Separator)
	if separator == -1 {
		return 0, nil, native.ErrorInvalidName
	}
	directory := paths.TrimTrailingSeparators(pattern[:separator+1])
	wildcard := pattern[separator+1:]
	if err := f.injected(OperationFindFirst, directory); err != nil {
		return 0, nil, err
	} else if wildcard == "" {
		return 0, nil, native.ErrorFileNotFound
	}

	// Resolve the directory.
	target, err := f.resolve(directory, true, 0)
	if err != nil {
		return 0, nil, err
	} else if target.node == nil {
		return 0, nil, native.ErrorPathNotFound
	} else if !target.node.isDirectory() {
		return 0, nil, native.ErrorDirectory
	}

	// Collect matching entries.
	var entries []*native.FindData
	if target.parent != nil {
		for _, name := range []string{".", ".."} {
			if f.matches(wildcard, name) {
				entries = append(entries, target.node.findData(name))
			}
		}
	}
	for _, key := range sortedChildren(target.node) {
		child := target.node.children[key]
		if f.matches(wildcard, child.name) {
			entries = append(entries, child.findData(child.name))
		}
	}
	if len(entries) == 0 {
		return 0, nil, native.ErrorFileNotFound
	}

	// Register the cursor.
	identifier := native.Cursor(f.nextIdentifier)
	f.nextIdentifier++
	f.cursors[identifier] = &cursor{directory: directory, entries: entries[1:]}
	return identifier, entries[0], nil
}

// FindNext implements native.Interface.FindNext.
func (f *FileSystem) FindNext(identifier native.Cursor) (*native.FindData, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	state, ok := f.cursors[identifier]
	if !ok {
		return nil, native.ErrorInvalidHandle
	} else if err := f.injected(OperationFindNext, state.directory); err != nil {
		return nil, err
	} else if len(state.entries) == 0 {
		return nil, native.ErrorNoMoreFiles
	}
	result := state.entries[0]
	state.entries = state.entries[1:]
	return result, nil
}

// FindClose implements native.Interface.FindClose.
func (f *FileSystem) FindClose(identifier native.Cursor) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if _, ok := f.cursors[identifier]; !ok {
		return native.ErrorInvalidHandle
	}
	delete(f.cursors, identifier)
	return nil
}

// OpenHandle implements native.Interface.OpenHandle. Symbolic links are
// followed and directories may be opened for timestamp updates.
func (f *FileSystem) OpenHandle(path string, access native.Access, share native.Share, disposition native.Disposition) (native.Handle, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationOpenHandle, path); err != nil {
		return 0, err
	}

	// Resolve the target.
	target, err := f.resolve(path, true, 0)
	if err != nil {
		return 0, err
	}
	writable := access&native.AccessWrite != 0

	// Apply the disposition.
	switch disposition {
	case native.CreateNew:
		if target.node != nil {
			return 0, native.ErrorFileExists
		}
	case native.OpenExisting, native.TruncateExisting:
		if target.node == nil {
			return 0, native.ErrorFileNotFound
		}
	case native.CreateAlways, native.OpenAlways:
	default:
		return 0, native.ErrorInvalidParameter
	}
	if target.node == nil {
		if target.parent == nil {
			return 0, native.ErrorAccessDenied
		}
		target.node = f.newNode(target.name, native.AttributeArchive)
		target.parent.children[target.key] = target.node
	} else {
		truncate := disposition == native.CreateAlways || disposition == native.TruncateExisting
		if writable && target.node.attributes&native.AttributeReadOnly != 0 {
			return 0, native.ErrorAccessDenied
		} else if truncate && target.node.isDirectory() {
			return 0, native.ErrorAccessDenied
		} else if target.node.handles > 0 && share&native.ShareWrite == 0 && writable {
			return 0, native.ErrorSharingViolation
		}
		if truncate {
			target.node.content = nil
			target.node.lastWrite = f.timestamp()
		}
	}

	// Register the handle.
	target.node.handles++
	identifier := native.Handle(f.nextIdentifier)
	f.nextIdentifier++
	f.handles[identifier] = &handle{target: target.node, access: access}
	return identifier, nil
}

// SetTimes implements native.Interface.SetTimes.
func (f *FileSystem) SetTimes(identifier native.Handle, creation, lastAccess, lastWrite *native.FileTime) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	state, ok := f.handles[identifier]
	if !ok {
		return native.ErrorInvalidHandle
	} else if state.access&native.AccessWrite == 0 {
		return native.ErrorAccessDenied
	}
	if creation != nil {
		state.target.creation = *creation
	}
	if lastAccess != nil {
		state.target.lastAccess = *lastAccess
	}
	if lastWrite != nil {
		state.target.lastWrite = *lastWrite
	}
	return nil
}

// ReadHandle implements native.Interface.ReadHandle.
func (f *FileSystem) ReadHandle(identifier native.Handle, buffer []byte) (int, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	state, ok := f.handles[identifier]
	if !ok {
		return 0, native.ErrorInvalidHandle
	} else if state.access&native.AccessRead == 0 {
		return 0, native.ErrorAccessDenied
	} else if state.target.isDirectory() {
		return 0, native.ErrorInvalidFunction
	}
	if state.offset >= len(state.target.content) {
		return 0, nil
	}
	count := copy(buffer, state.target.content[state.offset:])
	state.offset += count
	return count, nil
}

// WriteHandle implements native.Interface.WriteHandle.
func (f *FileSystem) WriteHandle(identifier native.Handle, buffer []byte) (int, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	state, ok := f.handles[identifier]
	if !ok {
		return 0, native.ErrorInvalidHandle
	} else if state.access&native.AccessWrite == 0 {
		return 0, native.ErrorAccessDenied
	} else if state.target.isDirectory() {
		return 0, native.ErrorInvalidFunction
	}
	end := state.offset + len(buffer)
	if end > len(state.target.content) {
		grown := make([]byte, end)
		copy(grown, state.target.content)
		state.target.content = grown
	}
	copy(state.target.content[state.offset:], buffer)
	state.offset = end
	state.target.lastWrite = f.timestamp()
	return len(buffer), nil
}

// CloseHandle implements native.Interface.CloseHandle.
func (f *FileSystem) CloseHandle(identifier native.Handle) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	state, ok := f.handles[identifier]
	if !ok {
		return native.ErrorInvalidHandle
	}
	state.target.handles--
	delete(f.handles, identifier)
	return nil
}

// CreateSymbolicLink implements native.Interface.CreateSymbolicLink. Targets
// are stored verbatim and need not exist.
func (f *FileSystem) CreateSymbolicLink(link, target string, directory bool) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationCreateSymbolicLink, link); err != nil {
		return err
	}
	location, err := f.resolve(link, false, 0)
	if err != nil {
		return err
	} else if location.node != nil || location.parent == nil {
		return native.ErrorAlreadyExists
	}
	attributes := native.AttributeReparsePoint | native.AttributeArchive
	if directory {
		attributes = native.AttributeReparsePoint | native.AttributeDirectory
	}
	created := f.newNode(location.name, attributes)
	created.target = target
	location.parent.children[location.key] = created
	return nil
}

// ReadSymbolicLink implements native.Interface.ReadSymbolicLink.
func (f *FileSystem) ReadSymbolicLink(path string) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.injected(OperationReadSymbolicLink, path); err != nil {
		return "", err
	}
	target, err := f.lookup(path, false)
	if err != nil {
		return "", err
	} else if !target.node.isSymbolicLink() {
		return "", native.ErrorNotAReparsePoint
	}
	return target.node.target, nil
}

// LogicalDrives implements native.Interface.LogicalDrives.
func (f *FileSystem) LogicalDrives() ([]string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	var drives []string
	for _, volume := range f.volumes {
		if !volume.share {
			drives = append(drives, paths.ToRegular(volume.extended))
		}
	}
	sort.Strings(drives)
	return drives, nil
}

// WorkingDirectory implements native.Interface.WorkingDirectory.
func (f *FileSystem) WorkingDirectory() (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.workingDirectory == "" {
		return "", native.ErrorPathNotFound
	}
	return f.workingDirectory, nil
}
