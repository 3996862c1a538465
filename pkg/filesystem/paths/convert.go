package paths

import (
	"strings"
)

// ToExtended converts a regular path to its extended-length form. Paths that
// are already extended are returned unchanged (modulo trailing separators).
// Regular share paths (\\server\share) become \\?\UNC\server\share and all
// other paths receive the \\?\ prefix.
func ToExtended(path string) string {
	path = TrimTrailingSeparators(path)
	if strings.HasPrefix(path, ShareExtendedPrefix) || hasLocalExtendedPrefix(path) {
		return path
	} else if strings.HasPrefix(path, ShareRegularPrefix) {
		return ShareExtendedPrefix + path[len(ShareRegularPrefix):]
	}
	return LocalExtendedPrefix + path
}

// ToRegular converts an extended-length path to its regular form. Paths that
// are not extended are returned unchanged (modulo trailing separators).
func ToRegular(path string) string {
	path = TrimTrailingSeparators(path)
	if strings.HasPrefix(path, ShareExtendedPrefix) {
		return ShareRegularPrefix + path[len(ShareExtendedPrefix):]
	} else if hasLocalExtendedPrefix(path) {
		return path[len(LocalExtendedPrefix):]
	}
	return path
}

// ExceedsRegularLimit returns whether or not the regular form of path is too
// long to be used with the non-extended Windows APIs.
func ExceedsRegularLimit(path string) bool {
	return len(ToRegular(path)) >= MaxRegularPathLength
}
