//go:build !windows

package native

// New returns the native implementation for the current platform. Long path
// access is only available on Windows.
func New() (Interface, error) {
	return nil, ErrUnsupportedPlatform
}
