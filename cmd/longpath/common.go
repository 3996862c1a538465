package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/configuration"
	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/logging"
	"github.com/mutagen-io/longpath/pkg/longpath"
)

// environment is the state shared by commands that access the filesystem.
type environment struct {
	// configuration is the effective global configuration.
	configuration *configuration.Configuration
	// logger is the root logger.
	logger *logging.Logger
	// filesystem is the host filesystem.
	filesystem *filesystem.FileSystem
}

// loggingLevel computes the effective log level. Debugging mode raises the
// configured level to at least LevelDebug.
func loggingLevel(configured logging.Level) logging.Level {
	if longpath.DebugEnabled && configured < logging.LevelDebug {
		return logging.LevelDebug
	}
	return configured
}

// loadEnvironment loads the global configuration and creates the host
// filesystem.
func loadEnvironment() (*environment, error) {
	global, err := configuration.LoadGlobal()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load configuration")
	}
	logger := logging.NewLogger(loggingLevel(global.Logging.Level), os.Stderr)
	host, err := filesystem.NewNative(logger.Sublogger("filesystem"))
	if err != nil {
		return nil, err
	}
	return &environment{
		configuration: global,
		logger:        logger,
		filesystem:    host,
	}, nil
}

// paths resolves each argument to a path descriptor.
func (e *environment) paths(arguments []string) ([]*filesystem.Path, error) {
	result := make([]*filesystem.Path, 0, len(arguments))
	for _, argument := range arguments {
		path, err := e.filesystem.Path(argument)
		if err != nil {
			return nil, err
		}
		result = append(result, path)
	}
	return result, nil
}

// formatSize formats a byte count, either in human-readable IEC units or as
// an exact decimal value.
func formatSize(size uint64, human bool) string {
	if human {
		return humanize.IBytes(size)
	}
	return strconv.FormatUint(size, 10)
}

// formatCount formats an entry count with digit grouping.
func formatCount(count int) string {
	return humanize.Comma(int64(count))
}

// formatTime formats a timestamp in local time.
func formatTime(t time.Time) string {
	return t.Local().Format(time.RFC3339)
}

// excluder matches paths against a set of doublestar exclusion patterns.
// Patterns are matched against the slash-separated path relative to the
// enumeration root and against the entry name alone.
type excluder struct {
	// root is the regular form of the enumeration root.
	root string
	// patterns are the validated exclusion patterns.
	patterns []string
}

// newExcluder validates the specified patterns and creates an excluder for
// an enumeration rooted at root.
func newExcluder(root *filesystem.Path, patterns []string) (*excluder, error) {
	for _, pattern := range patterns {
		// Bad pattern errors are only detected when matching against a
		// non-empty path.
		if _, err := doublestar.Match(pattern, "a"); err != nil {
			return nil, errors.Wrapf(err, "invalid exclusion pattern: %s", pattern)
		}
	}
	return &excluder{root: root.Regular(), patterns: patterns}, nil
}

// relative computes the slash-separated path of path relative to the root.
func (e *excluder) relative(path *filesystem.Path) string {
	relative := strings.TrimPrefix(path.Regular(), e.root)
	relative = strings.TrimLeft(relative, `\`)
	return strings.ReplaceAll(relative, `\`, "/")
}

// excluded returns whether or not path matches any exclusion pattern. Matching
// ignores case.
func (e *excluder) excluded(path *filesystem.Path) bool {
	if len(e.patterns) == 0 {
		return false
	}
	relative := strings.ToLower(e.relative(path))
	name := strings.ToLower(path.Name())
	for _, pattern := range e.patterns {
		pattern = strings.ToLower(pattern)
		if matched, _ := doublestar.Match(pattern, relative); matched {
			return true
		} else if matched, _ = doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
