package filesystem

// CreateSymbolicLink creates a symbolic link at link pointing to target, which
// is stored as supplied. The directory flag selects a directory link.
func (f *FileSystem) CreateSymbolicLink(link *Path, target string, directory bool) error {
	if link.IsRoot() {
		return newPathError("create symbolic link at", link, ErrUnsupportedOnRoot)
	}
	if err := f.native.CreateSymbolicLink(link.Extended(), target, directory); err != nil {
		return newNativeError("create symbolic link at", link.Extended(), err)
	}
	f.logger.Debugf("Created symbolic link %s -> %s", link, target)
	return nil
}

// ReadSymbolicLink returns the target of the symbolic link at path.
func (f *FileSystem) ReadSymbolicLink(path *Path) (string, error) {
	if path.IsRoot() {
		return "", newPathError("read symbolic link", path, ErrUnsupportedOnRoot)
	}
	target, err := f.native.ReadSymbolicLink(path.Extended())
	if err != nil {
		return "", newNativeError("read symbolic link", path.Extended(), err)
	}
	return target, nil
}
