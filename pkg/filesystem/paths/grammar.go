package paths

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// Separator is the path component separator.
	Separator = '\\'
	// separatorString is Separator as a string.
	separatorString = `\`

	// LocalExtendedPrefix is the prefix of extended-length local paths, e.g.
	// \\?\C:\folder.
	LocalExtendedPrefix = `\\?\`
	// localDevicePrefix is the device namespace prefix, which is accepted as
	// an alternative spelling of LocalExtendedPrefix for local paths.
	localDevicePrefix = `\\.\`
	// ShareRegularPrefix is the prefix of regular share paths, e.g.
	// \\server\share\folder.
	ShareRegularPrefix = `\\`
	// ShareExtendedPrefix is the prefix of extended-length share paths, e.g.
	// \\?\UNC\server\share\folder.
	ShareExtendedPrefix = `\\?\UNC\`

	// MaxRegularPathLength is the maximum length of a regular path accepted by
	// the non-extended Windows APIs.
	MaxRegularPathLength = 260
	// MaxRegularDirectoryPathLength is the maximum length of a regular
	// directory path (MAX_PATH minus room for an 8.3 file name).
	MaxRegularDirectoryPathLength = 247
	// MaxExtendedPathLength is the maximum length of an extended-length path.
	MaxExtendedPathLength = 32767
)

// ErrInvalidPath indicates that a path contains disallowed characters or does
// not match any recognized grammar.
var ErrInvalidPath = errors.New("invalid path")

// Location identifies whether a path addresses a local volume or a network
// share.
type Location uint8

const (
	// LocationLocal indicates a drive-letter-rooted path.
	LocationLocal Location = iota
	// LocationShare indicates a server-and-share-rooted path.
	LocationShare
)

// String provides a human-readable representation of a location.
func (l Location) String() string {
	switch l {
	case LocationLocal:
		return "local"
	case LocationShare:
		return "share"
	default:
		return "unknown"
	}
}

// Form identifies whether a path is expressed in regular or extended-length
// form.
type Form uint8

const (
	// FormRegular indicates the conventional form without an extended prefix.
	FormRegular Form = iota
	// FormExtended indicates the extended-length (\\?\-prefixed) form.
	FormExtended
)

// String provides a human-readable representation of a form.
func (f Form) String() string {
	switch f {
	case FormRegular:
		return "regular"
	case FormExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// ValidateCharacters verifies that a path contains no control characters
// (below 0x20) and none of the characters ", <, >, or |.
func ValidateCharacters(path string) error {
	for i := 0; i < len(path); i++ {
		switch c := path[i]; {
		case c < 0x20, c == '"', c == '<', c == '>', c == '|':
			return errors.Wrapf(ErrInvalidPath, "disallowed character 0x%02x at offset %d", c, i)
		}
	}
	return nil
}

// isDriveLetter returns whether or not c is a valid drive letter.
func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isDriveSpecification returns whether or not path is exactly a drive letter
// and colon (e.g. "C:").
func isDriveSpecification(path string) bool {
	return len(path) == 2 && isDriveLetter(path[0]) && path[1] == ':'
}

// hasLocalExtendedPrefix returns whether or not path begins with \\?\ or \\.\.
func hasLocalExtendedPrefix(path string) bool {
	return len(path) >= 4 && path[0] == Separator && path[1] == Separator &&
		(path[2] == '?' || path[2] == '.') && path[3] == Separator
}

// IsLocalRegular returns whether or not path is a local regular path such as
// C:\folder\file.txt.
func IsLocalRegular(path string) bool {
	return len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && path[2] == Separator
}

// IsLocalExtended returns whether or not path is a local extended path such as
// \\?\C:\folder\file.txt.
func IsLocalExtended(path string) bool {
	return len(path) >= 7 && hasLocalExtendedPrefix(path) && IsLocalRegular(path[4:])
}

// shareSegments splits the content following a share prefix into segments
// after trimming trailing separators. It returns false if the server or share
// segment is missing or empty.
func shareSegments(content string) ([]string, bool) {
	segments := strings.Split(strings.TrimRight(content, separatorString), separatorString)
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return nil, false
	}
	return segments, true
}

// IsShareRegular returns whether or not path is a regular share path such as
// \\server\share\folder\file.txt.
func IsShareRegular(path string) bool {
	if !strings.HasPrefix(path, ShareRegularPrefix) || hasLocalExtendedPrefix(path) {
		return false
	}
	_, ok := shareSegments(path[len(ShareRegularPrefix):])
	return ok
}

// IsShareExtended returns whether or not path is an extended share path such
// as \\?\UNC\server\share\folder\file.txt.
func IsShareExtended(path string) bool {
	if !strings.HasPrefix(path, ShareExtendedPrefix) {
		return false
	}
	_, ok := shareSegments(path[len(ShareExtendedPrefix):])
	return ok
}

// TrimTrailingSeparators removes trailing separators from path, except for the
// separator that terminates a drive root (C:\ or \\?\C:\).
func TrimTrailingSeparators(path string) string {
	trimmed := strings.TrimRight(path, separatorString)
	if isDriveSpecification(trimmed) {
		return trimmed + separatorString
	} else if hasLocalExtendedPrefix(trimmed) && isDriveSpecification(trimmed[4:]) {
		return trimmed + separatorString
	}
	return trimmed
}

// Name returns the final component of path, ignoring trailing separators.
func Name(path string) string {
	trimmed := strings.TrimRight(path, separatorString)
	if index := strings.LastIndexByte(trimmed, Separator); index != -1 {
		return trimmed[index+1:]
	}
	return trimmed
}

// isRooted returns whether or not a path element resets path combination,
// i.e. whether it starts with a separator or a drive specification.
func isRooted(element string) bool {
	if element == "" {
		return false
	}
	return element[0] == Separator || (len(element) >= 2 && isDriveLetter(element[0]) && element[1] == ':')
}

// Combine joins path elements with separators. An element that is itself
// rooted discards the elements preceding it. Empty elements are ignored.
func Combine(elements ...string) string {
	var result string
	for _, element := range elements {
		if element == "" {
			continue
		} else if isRooted(element) || result == "" {
			result = element
		} else if result[len(result)-1] == Separator {
			result += element
		} else {
			result += separatorString + element
		}
	}
	return result
}
