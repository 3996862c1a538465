package filesystem

import (
	"iter"
	"strings"

	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
	"github.com/mutagen-io/longpath/pkg/must"
)

// DefaultPattern is the find pattern used when none is specified.
const DefaultPattern = "*"

// Filter selects the entry types produced by enumeration.
type Filter uint8

const (
	// FilterFiles selects files.
	FilterFiles Filter = 1 << iota
	// FilterDirectories selects directories.
	FilterDirectories
	// FilterAll selects both files and directories.
	FilterAll = FilterFiles | FilterDirectories
)

// ErrorPolicy controls the handling of directory access failures during
// enumeration.
type ErrorPolicy uint8

const (
	// ErrorPolicyPropagate reports failures to the consumer and terminates
	// the enumeration.
	ErrorPolicyPropagate ErrorPolicy = iota
	// ErrorPolicySuppress treats a directory that has vanished or can't be
	// read as empty. Only the failure codes listed by IsSuppressible are
	// suppressed; all others still propagate.
	ErrorPolicySuppress
)

// NameToErrorPolicy converts a string-based representation of an error policy
// to the policy. It returns false if the name is unknown.
func NameToErrorPolicy(name string) (ErrorPolicy, bool) {
	switch name {
	case "propagate":
		return ErrorPolicyPropagate, true
	case "suppress":
		return ErrorPolicySuppress, true
	default:
		return ErrorPolicyPropagate, false
	}
}

// String provides a human-readable representation of an error policy.
func (p ErrorPolicy) String() string {
	switch p {
	case ErrorPolicyPropagate:
		return "propagate"
	case ErrorPolicySuppress:
		return "suppress"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.MarshalText.
func (p ErrorPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (p *ErrorPolicy) UnmarshalText(textBytes []byte) error {
	policy, ok := NameToErrorPolicy(string(textBytes))
	if !ok {
		return errors.Errorf("unknown error policy: %s", string(textBytes))
	}
	*p = policy
	return nil
}

// IsSuppressible returns whether or not ErrorPolicySuppress suppresses a
// native failure code: missing paths, missing network paths and shares, denied
// access, and entries that aren't directories.
func IsSuppressible(code native.Errno) bool {
	switch code {
	case native.ErrorPathNotFound,
		native.ErrorAccessDenied,
		native.ErrorDirectory,
		native.ErrorBadNetPath,
		native.ErrorBadNetName:
		return true
	default:
		return false
	}
}

// EnumerateOptions configures enumeration.
type EnumerateOptions struct {
	// Pattern is the find pattern applied to entry names at every level. It
	// may contain the * and ? wildcards but no separators. If empty,
	// DefaultPattern is used.
	Pattern string
	// Recursive indicates whether or not to descend into subdirectories.
	// Symbolic links to directories are never descended. With a non-default
	// pattern, only matching subdirectories are descended.
	Recursive bool
	// Filter selects the produced entry types. If zero, FilterAll is used.
	Filter Filter
	// ErrorPolicy is the failure handling policy.
	ErrorPolicy ErrorPolicy
}

// normalize applies defaults and validates the options.
func (o EnumerateOptions) normalize() (EnumerateOptions, error) {
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	} else if strings.ContainsAny(o.Pattern, `\/`) {
		return o, errors.Wrapf(ErrInvalidPath, "pattern contains separator: %q", o.Pattern)
	}
	if o.Filter&FilterAll == 0 {
		o.Filter = FilterAll
	}
	return o, nil
}

// Entry is a single enumerated entry.
type Entry struct {
	// Path is the entry path. Its metadata is pre-populated.
	Path *Path
	// Metadata is the entry metadata.
	Metadata *Metadata
}

// IsDirectory returns whether or not the entry is a directory.
func (e *Entry) IsDirectory() bool {
	return e.Metadata.IsDirectory()
}

// find drives a native find cursor over the entries of directory that match
// pattern, invoking visit for each entry other than "." and "..". It returns
// false if visit terminated the iteration. A pattern without any matches is an
// empty success. The cursor is released on every exit path.
func (f *FileSystem) find(directory *Path, pattern string, visit func(*Entry) bool) (bool, error) {
	// Open the cursor.
	cursor, data, err := f.native.FindFirst(paths.Combine(directory.Extended(), pattern))
	if err != nil {
		if errors.Is(err, native.ErrorFileNotFound) || errors.Is(err, native.ErrorNoMoreFiles) {
			return true, nil
		}
		return false, newNativeError("enumerate", directory.Extended(), err)
	}
	f.logger.Tracef("Opened find cursor %d for %s", cursor, directory)
	defer func() {
		must.FindClose(f.native, cursor, f.logger)
		f.logger.Tracef("Closed find cursor %d for %s", cursor, directory)
	}()

	// Process entries until the cursor is exhausted.
	for {
		if !data.IsSystemEntry() {
			entry := &Entry{Metadata: newMetadata(data)}
			if entry.Path, err = directory.entry(entry.Metadata); err != nil {
				return false, err
			} else if !visit(entry) {
				return false, nil
			}
		}
		if data, err = f.native.FindNext(cursor); err != nil {
			if errors.Is(err, native.ErrorNoMoreFiles) {
				return true, nil
			}
			return false, newNativeError("enumerate", directory.Extended(), err)
		}
	}
}

// suppressed returns whether or not policy suppresses a find failure.
func (f *FileSystem) suppressed(directory *Path, err error, policy ErrorPolicy) bool {
	if policy != ErrorPolicySuppress {
		return false
	}
	var nativeErr *NativeError
	if !errors.As(err, &nativeErr) || !IsSuppressible(nativeErr.Code) {
		return false
	}
	f.logger.Debugf("Suppressed enumeration failure for %s: %v", directory, nativeErr.Code)
	return true
}

// Enumerate returns a lazy sequence of the entries within directory. Entries
// are produced in native order, depth-first and pre-order when recursive, so
// that a directory precedes its contents. A propagated failure is produced as
// the final element of the sequence. Abandoning the sequence early releases
// all native resources. Each call starts a new enumeration.
func (f *FileSystem) Enumerate(directory *Path, options EnumerateOptions) iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		options, err := options.normalize()
		if err != nil {
			yield(nil, err)
			return
		}
		f.enumerate(directory, options, yield)
	}
}

// enumerate is the recursive implementation of Enumerate. It returns false if
// the sequence has terminated.
func (f *FileSystem) enumerate(directory *Path, options EnumerateOptions, yield func(*Entry, error) bool) bool {
	completed, err := f.find(directory, options.Pattern, func(entry *Entry) bool {
		if entry.IsDirectory() {
			if options.Filter&FilterDirectories != 0 && !yield(entry, nil) {
				return false
			}
			if options.Recursive && !entry.Metadata.SymbolicLink {
				return f.enumerate(entry.Path, options, yield)
			}
			return true
		} else if options.Filter&FilterFiles != 0 {
			return yield(entry, nil)
		}
		return true
	})
	if err != nil {
		if f.suppressed(directory, err, options.ErrorPolicy) {
			return true
		}
		yield(nil, err)
		return false
	}
	return completed
}

// EnumerateFiles is like Enumerate but produces only files.
func (f *FileSystem) EnumerateFiles(directory *Path, options EnumerateOptions) iter.Seq2[*FileDetail, error] {
	options.Filter = FilterFiles
	return func(yield func(*FileDetail, error) bool) {
		for entry, err := range f.Enumerate(directory, options) {
			if err != nil {
				yield(nil, err)
				return
			} else if !yield(&FileDetail{Path: entry.Path, Metadata: entry.Metadata}, nil) {
				return
			}
		}
	}
}

// EnumerateDirectories is like Enumerate but produces only directories.
func (f *FileSystem) EnumerateDirectories(directory *Path, options EnumerateOptions) iter.Seq2[*DirectoryDetail, error] {
	options.Filter = FilterDirectories
	return func(yield func(*DirectoryDetail, error) bool) {
		for entry, err := range f.Enumerate(directory, options) {
			if err != nil {
				yield(nil, err)
				return
			} else if !yield(&DirectoryDetail{Path: entry.Path, Metadata: entry.Metadata}, nil) {
				return
			}
		}
	}
}

// EnumeratePaths is like Enumerate but produces path strings in the specified
// form.
func (f *FileSystem) EnumeratePaths(directory *Path, options EnumerateOptions, form paths.Form) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for entry, err := range f.Enumerate(directory, options) {
			if err != nil {
				yield("", err)
				return
			}
			path := entry.Path.Regular()
			if form == paths.FormExtended {
				path = entry.Path.Extended()
			}
			if !yield(path, nil) {
				return
			}
		}
	}
}
