package filesystem

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
)

var (
	// ErrInvalidPath indicates that a path contains disallowed characters or
	// doesn't match any recognized grammar.
	ErrInvalidPath = paths.ErrInvalidPath
	// ErrUnsupportedDrive indicates that a local path is rooted at a drive
	// that isn't currently mounted.
	ErrUnsupportedDrive = errors.New("unsupported drive")
	// ErrPathNotFound indicates that no entry exists at a path.
	ErrPathNotFound = errors.New("path not found")
	// ErrUnmatchedEntryType indicates that a file was found where a directory
	// was expected or vice versa.
	ErrUnmatchedEntryType = errors.New("unmatched entry type")
	// ErrUnsupportedOnRoot indicates that an operation requiring entry
	// metadata was requested on a drive or share root.
	ErrUnsupportedOnRoot = errors.New("operation unsupported on root")
	// ErrNativeFailure is matched by all NativeError values.
	ErrNativeFailure = errors.New("native failure")
)

// PathError records a failure that isn't directly attributable to a native
// call, such as a classification failure or an entry type mismatch.
type PathError struct {
	// Op is the operation that failed.
	Op string
	// Path is the regular form of the affected path (or the path as supplied
	// if it couldn't be classified).
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *PathError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// NativeError records a failed native call. It matches ErrNativeFailure and
// its native code under errors.Is. Codes that indicate a missing entry also
// match ErrPathNotFound.
type NativeError struct {
	// Op is the operation that failed.
	Op string
	// Path is the regular form of the affected path.
	Path string
	// Code is the native error code.
	Code native.Errno
}

// Error implements error.Error.
func (e *NativeError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Code)
}

// Is supports errors.Is.
func (e *NativeError) Is(target error) bool {
	if target == ErrNativeFailure {
		return true
	}
	return target == ErrPathNotFound && e.Code.NotFound()
}

// Unwrap returns the native error code.
func (e *NativeError) Unwrap() error {
	return e.Code
}

// newPathError creates a PathError for path.
func newPathError(op string, path *Path, err error) error {
	return &PathError{Op: op, Path: path.Regular(), Err: err}
}

// newNativeError maps a native failure affecting path (in either form) to a
// NativeError. Errors that don't carry a native code are wrapped instead.
func newNativeError(op, path string, err error) error {
	var code native.Errno
	if errors.As(err, &code) {
		return &NativeError{Op: op, Path: paths.ToRegular(path), Code: code}
	}
	return errors.Wrapf(err, "unable to %s %s", op, paths.ToRegular(path))
}
