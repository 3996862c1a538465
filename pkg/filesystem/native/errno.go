package native

import (
	"fmt"
)

// Errno is a platform error code reported by a native operation.
type Errno uint32

const (
	// ErrorInvalidFunction indicates an operation unsupported by the target,
	// such as reading from a directory handle.
	ErrorInvalidFunction Errno = 1
	// ErrorFileNotFound indicates that the target file doesn't exist. It is
	// also returned by FindFirst if no entry matches the pattern.
	ErrorFileNotFound Errno = 2
	// ErrorPathNotFound indicates that an intermediate path component doesn't
	// exist.
	ErrorPathNotFound Errno = 3
	// ErrorAccessDenied indicates insufficient access rights.
	ErrorAccessDenied Errno = 5
	// ErrorInvalidHandle indicates an unknown or closed handle or cursor.
	ErrorInvalidHandle Errno = 6
	// ErrorNoMoreFiles indicates that a find cursor is exhausted.
	ErrorNoMoreFiles Errno = 18
	// ErrorNotSameDevice indicates a move across volumes.
	ErrorNotSameDevice Errno = 17
	// ErrorSharingViolation indicates that the target is in use.
	ErrorSharingViolation Errno = 32
	// ErrorNotSupported indicates that the request isn't supported.
	ErrorNotSupported Errno = 50
	// ErrorBadNetPath indicates that the network path wasn't found.
	ErrorBadNetPath Errno = 53
	// ErrorBadNetName indicates that the network share name wasn't found.
	ErrorBadNetName Errno = 67
	// ErrorFileExists indicates that the target file already exists.
	ErrorFileExists Errno = 80
	// ErrorInvalidParameter indicates an invalid argument.
	ErrorInvalidParameter Errno = 87
	// ErrorInvalidName indicates a malformed path.
	ErrorInvalidName Errno = 123
	// ErrorDirNotEmpty indicates that a directory can't be removed because it
	// has content.
	ErrorDirNotEmpty Errno = 145
	// ErrorAlreadyExists indicates that the target already exists.
	ErrorAlreadyExists Errno = 183
	// ErrorDirectory indicates that a directory name is invalid, typically
	// because the path names a file.
	ErrorDirectory Errno = 267
	// ErrorCantResolveFilename indicates a symbolic link cycle or an excessive
	// link chain.
	ErrorCantResolveFilename Errno = 1921
	// ErrorNotAReparsePoint indicates that the target isn't a reparse point.
	ErrorNotAReparsePoint Errno = 4390
)

// errnoNames maps known error codes to their platform names.
var errnoNames = map[Errno]string{
	ErrorInvalidFunction:     "ERROR_INVALID_FUNCTION",
	ErrorNotSameDevice:       "ERROR_NOT_SAME_DEVICE",
	ErrorCantResolveFilename: "ERROR_CANT_RESOLVE_FILENAME",
	ErrorFileNotFound:        "ERROR_FILE_NOT_FOUND",
	ErrorPathNotFound:        "ERROR_PATH_NOT_FOUND",
	ErrorAccessDenied:        "ERROR_ACCESS_DENIED",
	ErrorInvalidHandle:       "ERROR_INVALID_HANDLE",
	ErrorNoMoreFiles:         "ERROR_NO_MORE_FILES",
	ErrorSharingViolation:    "ERROR_SHARING_VIOLATION",
	ErrorNotSupported:        "ERROR_NOT_SUPPORTED",
	ErrorBadNetPath:          "ERROR_BAD_NETPATH",
	ErrorBadNetName:          "ERROR_BAD_NET_NAME",
	ErrorFileExists:          "ERROR_FILE_EXISTS",
	ErrorInvalidParameter:    "ERROR_INVALID_PARAMETER",
	ErrorInvalidName:         "ERROR_INVALID_NAME",
	ErrorDirNotEmpty:         "ERROR_DIR_NOT_EMPTY",
	ErrorAlreadyExists:       "ERROR_ALREADY_EXISTS",
	ErrorDirectory:           "ERROR_DIRECTORY",
	ErrorNotAReparsePoint:    "ERROR_NOT_A_REPARSE_POINT",
}

// Name returns the platform name of the error code, or an empty string if the
// code is unknown.
func (e Errno) Name() string {
	return errnoNames[e]
}

// Error implements error.Error.
func (e Errno) Error() string {
	if name, ok := errnoNames[e]; ok {
		return fmt.Sprintf("%s (%d)", name, uint32(e))
	}
	return fmt.Sprintf("native error %d", uint32(e))
}

// Exists returns whether or not the error code indicates that the target
// already exists.
func (e Errno) Exists() bool {
	return e == ErrorAlreadyExists || e == ErrorFileExists
}

// NotFound returns whether or not the error code indicates that the target or
// one of its ancestors doesn't exist.
func (e Errno) NotFound() bool {
	return e == ErrorFileNotFound || e == ErrorPathNotFound ||
		e == ErrorBadNetPath || e == ErrorBadNetName
}
