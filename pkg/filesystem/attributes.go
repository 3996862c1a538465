package filesystem

import (
	"github.com/mutagen-io/longpath/pkg/filesystem/native"
)

// GetAttributes queries the current attribute mask of the entry at path. The
// result isn't cached.
func (f *FileSystem) GetAttributes(path *Path) (native.Attributes, error) {
	if path.IsRoot() {
		return native.InvalidAttributes, newPathError("get attributes of", path, ErrUnsupportedOnRoot)
	}
	attributes, err := f.native.GetAttributes(path.Extended())
	if err != nil {
		return native.InvalidAttributes, newNativeError("get attributes of", path.Extended(), err)
	}
	return attributes, nil
}

// SetAttributes replaces the attribute mask of the entry at path.
func (f *FileSystem) SetAttributes(path *Path, attributes native.Attributes) error {
	if path.IsRoot() {
		return newPathError("set attributes of", path, ErrUnsupportedOnRoot)
	}
	if err := f.native.SetAttributes(path.Extended(), attributes); err != nil {
		return newNativeError("set attributes of", path.Extended(), err)
	}
	f.logger.Tracef("Set attributes of %s to %s", path, attributes)
	return nil
}

// AddAttribute sets the specified attribute bits on the entry at path. It
// returns whether or not the mask changed.
func (f *FileSystem) AddAttribute(path *Path, attribute native.Attributes) (bool, error) {
	current, err := f.GetAttributes(path)
	if err != nil {
		return false, err
	} else if current.Has(attribute) {
		return false, nil
	}
	if err := f.SetAttributes(path, current|attribute); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAttribute clears the specified attribute bits on the entry at path. It
// returns whether or not the mask changed.
func (f *FileSystem) RemoveAttribute(path *Path, attribute native.Attributes) (bool, error) {
	current, err := f.GetAttributes(path)
	if err != nil {
		return false, err
	} else if current&attribute == 0 {
		return false, nil
	}
	if err := f.SetAttributes(path, current&^attribute); err != nil {
		return false, err
	}
	return true, nil
}
