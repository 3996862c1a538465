package memory

import (
	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
)

// AddDirectory creates a directory along with any missing ancestors. Unlike the
// native.Interface methods, it accepts paths in either form.
func (f *FileSystem) AddDirectory(path string) error {
	result, err := paths.Parse(path)
	if err != nil {
		return err
	}

	// Collect the missing chain of ancestors.
	var chain []string
	for !result.IsRoot {
		chain = append(chain, result.Extended)
		if result, err = paths.Parse(result.Parent); err != nil {
			return err
		}
	}

	// Create them from the top down.
	for i := len(chain) - 1; i >= 0; i-- {
		if err := f.CreateDirectory(chain[i]); err != nil && err != native.ErrorAlreadyExists {
			return err
		}
	}
	return nil
}

// AddFile creates or replaces a file with the specified content, creating any
// missing ancestors. It accepts paths in either form.
func (f *FileSystem) AddFile(path string, content []byte) error {
	result, err := paths.Parse(path)
	if err != nil {
		return err
	} else if err = f.AddDirectory(result.Parent); err != nil {
		return err
	}
	handle, err := f.OpenHandle(result.Extended, native.AccessWrite, native.ShareAll, native.CreateAlways)
	if err != nil {
		return err
	}
	if _, err := f.WriteHandle(handle, content); err != nil {
		f.CloseHandle(handle)
		return err
	}
	return f.CloseHandle(handle)
}

// AddSymbolicLink creates a symbolic link, creating any missing ancestors. It
// accepts link paths in either form. The target is stored verbatim.
func (f *FileSystem) AddSymbolicLink(link, target string, directory bool) error {
	result, err := paths.Parse(link)
	if err != nil {
		return err
	} else if err = f.AddDirectory(result.Parent); err != nil {
		return err
	}
	return f.CreateSymbolicLink(result.Extended, target, directory)
}
