package filesystem

import (
	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/logging"
)

// FileSystem provides long-path-safe operations over a native interface. It
// holds no mutable state of its own, so it's safe for concurrent usage to the
// extent that the underlying filesystem is.
type FileSystem struct {
	// native is the underlying native interface.
	native native.Interface
	// logger is the logger for the filesystem. It may be nil.
	logger *logging.Logger
}

// New creates a new filesystem over the specified native interface. The
// logger may be nil, in which case logging is disabled.
func New(n native.Interface, logger *logging.Logger) *FileSystem {
	return &FileSystem{
		native: n,
		logger: logger,
	}
}

// NewNative creates a new filesystem over the host's native interface.
func NewNative(logger *logging.Logger) (*FileSystem, error) {
	n, err := native.New()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load native interface")
	}
	return New(n, logger), nil
}

// Native returns the underlying native interface.
func (f *FileSystem) Native() native.Interface {
	return f.native
}
