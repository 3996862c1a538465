package paths

import (
	"strings"

	"github.com/pkg/errors"
)

// Result is the decomposition of a classified path. For roots, Name, Parent,
// and Root are empty.
type Result struct {
	// Regular is the path in regular form, without trailing separators (other
	// than the one terminating a drive root).
	Regular string
	// Extended is the path in extended-length form.
	Extended string
	// Name is the final path component.
	Name string
	// Parent is the regular form of the parent path.
	Parent string
	// Root is the regular form of the root path.
	Root string
	// IsRoot indicates whether the path is a drive root or a share root.
	IsRoot bool
	// Location indicates whether the path is local or a share.
	Location Location
	// Form indicates the form in which the path was supplied.
	Form Form
}

// Path returns the path in the form in which it was supplied.
func (r *Result) Path() string {
	if r.Form == FormExtended {
		return r.Extended
	}
	return r.Regular
}

// parseLocalRegular decomposes a local regular path.
func parseLocalRegular(path string) (*Result, bool) {
	if !IsLocalRegular(path) {
		return nil, false
	}

	result := &Result{Location: LocationLocal, Form: FormRegular}

	trimmed := strings.TrimRight(path, separatorString)
	if isDriveSpecification(trimmed) {
		result.IsRoot = true
		result.Regular = path[:3]
		result.Extended = LocalExtendedPrefix + result.Regular
		return result, true
	}

	separator := strings.LastIndexByte(trimmed, Separator)
	result.Regular = trimmed
	result.Extended = LocalExtendedPrefix + trimmed
	result.Name = trimmed[separator+1:]
	result.Parent = trimmed[:separator]
	if isDriveSpecification(result.Parent) {
		result.Parent += separatorString
	}
	result.Root = path[:3]
	return result, true
}

// parseLocalExtended decomposes a local extended path. The prefix spelling used
// by the caller (\\?\ or \\.\) is preserved in the extended form.
func parseLocalExtended(path string) (*Result, bool) {
	if !IsLocalExtended(path) {
		return nil, false
	}
	result, _ := parseLocalRegular(path[4:])
	result.Form = FormExtended
	result.Extended = path[:4] + result.Regular
	return result, true
}

// parseShare performs the decomposition common to both share grammars. The
// content is the portion of the path following the share prefix.
func parseShare(content string, form Form) (*Result, bool) {
	segments, ok := shareSegments(content)
	if !ok {
		return nil, false
	}

	server, share := segments[0], segments[1]
	rootRelative := server + separatorString + share
	relative := strings.Join(segments, separatorString)

	result := &Result{Location: LocationShare, Form: form}
	if relative == rootRelative {
		result.IsRoot = true
		result.Regular = ShareRegularPrefix + rootRelative
		result.Extended = ShareExtendedPrefix + rootRelative
		return result, true
	}

	result.Regular = ShareRegularPrefix + relative
	result.Extended = ShareExtendedPrefix + relative
	result.Name = segments[len(segments)-1]
	result.Parent = ShareRegularPrefix + relative[:strings.LastIndexByte(relative, Separator)]
	result.Root = ShareRegularPrefix + rootRelative
	return result, true
}

// parseShareRegular decomposes a regular share path.
func parseShareRegular(path string) (*Result, bool) {
	if !IsShareRegular(path) {
		return nil, false
	}
	return parseShare(path[len(ShareRegularPrefix):], FormRegular)
}

// parseShareExtended decomposes an extended share path.
func parseShareExtended(path string) (*Result, bool) {
	if !IsShareExtended(path) {
		return nil, false
	}
	return parseShare(path[len(ShareExtendedPrefix):], FormExtended)
}

// parsers are the grammar parsers in priority order.
var parsers = []func(string) (*Result, bool){
	parseLocalRegular,
	parseLocalExtended,
	parseShareRegular,
	parseShareExtended,
}

// Parse validates and classifies an absolute path, returning its
// decomposition. Relative paths are rejected; see ParseRelative.
func Parse(path string) (*Result, error) {
	if err := ValidateCharacters(path); err != nil {
		return nil, err
	}
	for _, parse := range parsers {
		if result, ok := parse(path); ok {
			return result, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidPath, "unrecognized path format: %q", path)
}

// ParseRelative is like Parse, but if path does not match any grammar, it is
// resolved against workingDirectory and the result is retried as a local
// regular path.
func ParseRelative(path, workingDirectory string) (*Result, error) {
	if err := ValidateCharacters(path); err != nil {
		return nil, err
	}
	for _, parse := range parsers {
		if result, ok := parse(path); ok {
			return result, nil
		}
	}

	resolved, err := Resolve(path, workingDirectory)
	if err != nil {
		return nil, err
	}
	if result, ok := parseLocalRegular(resolved); ok {
		return result, nil
	}
	return nil, errors.Wrapf(ErrInvalidPath, "unable to resolve %q to a local path", path)
}

// Join composes the decomposition of a child of result with the specified
// name. The child retains the form of its parent.
func Join(result *Result, name string) (*Result, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `\:`) {
		return nil, errors.Wrapf(ErrInvalidPath, "invalid child name: %q", name)
	}
	return Parse(Combine(result.Path(), name))
}
