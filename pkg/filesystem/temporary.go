package filesystem

import (
	"github.com/mutagen-io/longpath/pkg/identifier"
)

// CreateTemporaryDirectory creates a uniquely named directory within parent
// and returns its path.
func (f *FileSystem) CreateTemporaryDirectory(parent *Path) (*Path, error) {
	name, err := identifier.New(identifier.PrefixTemporaryDirectory)
	if err != nil {
		return nil, newPathError("create temporary directory in", parent, err)
	}
	directory, err := parent.child(name)
	if err != nil {
		return nil, err
	}
	if err := f.native.CreateDirectory(directory.Extended()); err != nil {
		return nil, newNativeError("create temporary directory", directory.Extended(), err)
	}
	f.logger.Debugf("Created temporary directory %s", directory)
	return directory, nil
}
