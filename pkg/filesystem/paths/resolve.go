package paths

import (
	"strings"

	"github.com/pkg/errors"
)

// clean normalizes a local regular path by removing empty and "." components
// and applying ".." components. A ".." at the root is discarded, matching the
// behavior of Windows path normalization.
func clean(path string) string {
	drive, remainder := path[:2], path[3:]
	components := make([]string, 0, strings.Count(remainder, separatorString)+1)
	for _, component := range strings.Split(remainder, separatorString) {
		switch component {
		case "", ".":
		case "..":
			if len(components) > 0 {
				components = components[:len(components)-1]
			}
		default:
			components = append(components, component)
		}
	}
	return drive + separatorString + strings.Join(components, separatorString)
}

// Resolve converts a relative path to an absolute local regular path using the
// specified working directory, which must itself be a local path (regular or
// extended). Forward slashes are treated as separators. Drive-relative paths
// (e.g. "D:folder") resolve against the working directory if it resides on the
// same drive and against the drive root otherwise. Rooted paths without a
// drive (e.g. "\folder") resolve against the working directory's drive.
func Resolve(path, workingDirectory string) (string, error) {
	if path == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty path")
	}

	// Normalize separators.
	path = strings.ReplaceAll(path, "/", separatorString)
	if IsLocalRegular(path) {
		return clean(path), nil
	} else if strings.HasPrefix(path, ShareRegularPrefix) {
		return "", errors.Wrapf(ErrInvalidPath, "unresolvable path: %q", path)
	}

	// Parse the working directory.
	working, err := Parse(workingDirectory)
	if err != nil {
		return "", errors.Wrap(err, "invalid working directory")
	} else if working.Location != LocationLocal {
		return "", errors.Wrap(ErrInvalidPath, "relative paths require a local working directory")
	}
	workingRoot := working.Root
	if working.IsRoot {
		workingRoot = working.Regular
	}

	// Compute the base against which the path will be resolved.
	var base string
	if len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		if strings.EqualFold(path[:1], working.Regular[:1]) {
			base = working.Regular
		} else {
			base = path[:2] + separatorString
		}
		path = path[2:]
	} else if path[0] == Separator {
		base = workingRoot
		path = path[1:]
	} else {
		base = working.Regular
	}

	// Combine and normalize.
	return clean(Combine(base, path)), nil
}
