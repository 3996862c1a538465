package filesystem

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/native/memory"
	"github.com/mutagen-io/longpath/pkg/filesystem/paths"
	"github.com/mutagen-io/longpath/pkg/logging"
)

func TestEnumerate(t *testing.T) {
	filesystem, backend := newTestFileSystem(t)
	directory := mustPath(t, filesystem, `C:\D`)

	// Set up test cases.
	testCases := []struct {
		description string
		options     EnumerateOptions
		expected    []string
	}{
		{
			"files",
			EnumerateOptions{Filter: FilterFiles},
			[]string{`C:\D\a.txt`, `C:\D\b.txt`},
		},
		{
			"recursive files",
			EnumerateOptions{Recursive: true, Filter: FilterFiles},
			[]string{`C:\D\a.txt`, `C:\D\b.txt`, `C:\D\S\c.txt`},
		},
		{
			"recursive directories",
			EnumerateOptions{Recursive: true, Filter: FilterDirectories},
			[]string{`C:\D\S`},
		},
		{
			"recursive all in pre-order",
			EnumerateOptions{Recursive: true},
			[]string{`C:\D\a.txt`, `C:\D\b.txt`, `C:\D\S`, `C:\D\S\c.txt`},
		},
		{
			"non-recursive all",
			EnumerateOptions{Filter: FilterAll},
			[]string{`C:\D\a.txt`, `C:\D\b.txt`, `C:\D\S`},
		},
		{
			"pattern",
			EnumerateOptions{Pattern: "b*"},
			[]string{`C:\D\b.txt`},
		},
		{
			"pattern without matches",
			EnumerateOptions{Pattern: "*.doc", Recursive: true},
			nil,
		},
		{
			"pattern limits descent",
			EnumerateOptions{Pattern: "*.txt", Recursive: true},
			[]string{`C:\D\a.txt`, `C:\D\b.txt`},
		},
	}

	// Process test cases.
	for _, testCase := range testCases {
		result, err := collect(filesystem.Enumerate(directory, testCase.options))
		if err != nil {
			t.Errorf("%s: unable to enumerate: %v", testCase.description, err)
		} else if diff := cmp.Diff(testCase.expected, result); diff != "" {
			t.Errorf("%s: unexpected entries (-expected +actual):\n%s", testCase.description, diff)
		}
	}

	// Ensure that all cursors were released.
	if count := backend.OpenCursors(); count != 0 {
		t.Error("cursors leaked:", count)
	}
}

func TestEnumerateRestart(t *testing.T) {
	filesystem, _ := newTestFileSystem(t)
	sequence := filesystem.Enumerate(mustPath(t, filesystem, `C:\D`), EnumerateOptions{Recursive: true})
	first, err := collect(sequence)
	if err != nil {
		t.Fatal("unable to perform first enumeration:", err)
	}
	second, err := collect(sequence)
	if err != nil {
		t.Fatal("unable to perform second enumeration:", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("enumerations differ (-first +second):\n%s", diff)
	}
}

func TestEnumerateEntryMetadata(t *testing.T) {
	filesystem, backend := newTestFileSystem(t)
	for entry, err := range filesystem.Enumerate(mustPath(t, filesystem, `C:\D`), EnumerateOptions{}) {
		if err != nil {
			t.Fatal("unable to enumerate:", err)
		}
		if entry.Metadata.Name != entry.Path.Name() {
			t.Error("metadata name mismatch:", entry.Metadata.Name, entry.Path.Name())
		}

		// Metadata should be served from the enumeration.
		backend.FailNext(memory.OperationFindFirst, "", native.ErrorAccessDenied)
		metadata, err := entry.Path.Metadata()
		if err != nil || metadata != entry.Metadata {
			t.Error("path metadata not seeded from enumeration:", err)
		}
		if _, err := collect(filesystem.Enumerate(mustPath(t, filesystem, `C:\`), EnumerateOptions{})); err == nil {
			t.Fatal("injected failure not consumed", err)
		}
	}
}

func TestEnumerateSymbolicLinksNotDescended(t *testing.T) {
	filesystem, backend := newTestFileSystem(t)

	// Replace S with a symbolic link to a directory with the same content.
	if err := backend.AddFile(`C:\target\c.txt`, []byte("ccccc")); err != nil {
		t.Fatal("unable to create link target:", err)
	}
	if err := backend.DeleteFile(`\\?\C:\D\S\c.txt`); err != nil {
		t.Fatal("unable to remove file:", err)
	} else if err := backend.RemoveDirectory(`\\?\C:\D\S`); err != nil {
		t.Fatal("unable to remove directory:", err)
	} else if err := backend.AddSymbolicLink(`C:\D\S`, `C:\target`, true); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}

	// Verify that the link is produced but not descended.
	directory := mustPath(t, filesystem, `C:\D`)
	var symbolicLinks []string
	for entry, err := range filesystem.Enumerate(directory, EnumerateOptions{Recursive: true}) {
		if err != nil {
			t.Fatal("unable to enumerate:", err)
		} else if strings.HasPrefix(entry.Path.Regular(), `C:\D\S\`) {
			t.Error("symbolic link descended:", entry.Path)
		} else if entry.Metadata.SymbolicLink {
			symbolicLinks = append(symbolicLinks, entry.Path.Regular())
		}
	}
	if diff := cmp.Diff([]string{`C:\D\S`}, symbolicLinks); diff != "" {
		t.Errorf("unexpected symbolic links (-expected +actual):\n%s", diff)
	}

	// Verify that the link target is still reachable directly.
	linked, err := collect(filesystem.Enumerate(mustPath(t, filesystem, `C:\D\S`), EnumerateOptions{}))
	if err != nil {
		t.Fatal("unable to enumerate through link:", err)
	} else if diff := cmp.Diff([]string{`C:\D\S\c.txt`}, linked); diff != "" {
		t.Errorf("unexpected linked entries (-expected +actual):\n%s", diff)
	}
}

func TestEnumerateEarlyTermination(t *testing.T) {
	filesystem, backend := newTestFileSystem(t)
	directory := mustPath(t, filesystem, `C:\D`)

	// Stop at the top level.
	for range filesystem.Enumerate(directory, EnumerateOptions{Recursive: true}) {
		break
	}
	if count := backend.OpenCursors(); count != 0 {
		t.Error("cursors leaked after top-level break:", count)
	}

	// Stop while nested, with both cursors open.
	for entry, err := range filesystem.Enumerate(directory, EnumerateOptions{Recursive: true}) {
		if err != nil {
			t.Fatal("unable to enumerate:", err)
		} else if entry.Path.Name() == "c.txt" {
			if count := backend.OpenCursors(); count != 2 {
				t.Error("unexpected open cursor count while nested:", count)
			}
			break
		}
	}
	if count := backend.OpenCursors(); count != 0 {
		t.Error("cursors leaked after nested break:", count)
	}
}

func TestEnumerateVanishedDirectory(t *testing.T) {
	filesystem, backend := newTestFileSystem(t)
	if err := backend.AddDirectory(`C:\gone`); err != nil {
		t.Fatal("unable to create directory:", err)
	}
	directory := mustPath(t, filesystem, `C:\gone`)
	if err := backend.RemoveDirectory(directory.Extended()); err != nil {
		t.Fatal("unable to remove directory:", err)
	}

	// Suppression yields an empty sequence.
	result, err := collect(filesystem.Enumerate(directory, EnumerateOptions{ErrorPolicy: ErrorPolicySuppress}))
	if err != nil {
		t.Error("suppressed enumeration failed:", err)
	} else if len(result) != 0 {
		t.Error("suppressed enumeration produced entries:", result)
	}

	// Propagation yields a native failure referencing the regular path.
	_, err = collect(filesystem.Enumerate(directory, EnumerateOptions{ErrorPolicy: ErrorPolicyPropagate}))
	if !errors.Is(err, ErrNativeFailure) {
		t.Fatal("propagated enumeration produced unexpected error:", err)
	} else if !errors.Is(err, native.ErrorPathNotFound) {
		t.Error("native failure code not preserved:", err)
	}
	var nativeErr *NativeError
	if !errors.As(err, &nativeErr) {
		t.Fatal("failure is not a native error")
	} else if nativeErr.Path != `C:\gone` {
		t.Error("native failure path not in regular form:", nativeErr.Path)
	}
}

func TestEnumerateSubdirectoryFailure(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		description string
		operation   memory.Operation
		code        native.Errno
		policy      ErrorPolicy
		expectError bool
	}{
		{"suppressed open", memory.OperationFindFirst, native.ErrorAccessDenied, ErrorPolicySuppress, false},
		{"suppressed advance", memory.OperationFindNext, native.ErrorAccessDenied, ErrorPolicySuppress, false},
		{"propagated open", memory.OperationFindFirst, native.ErrorAccessDenied, ErrorPolicyPropagate, true},
		{"propagated advance", memory.OperationFindNext, native.ErrorPathNotFound, ErrorPolicyPropagate, true},
		{"unsuppressible open", memory.OperationFindFirst, native.ErrorSharingViolation, ErrorPolicySuppress, true},
	}

	// Process test cases.
	for _, testCase := range testCases {
		filesystem, backend := newTestFileSystem(t)
		backend.FailNext(testCase.operation, `C:\D\S`, testCase.code)
		result, err := collect(filesystem.Enumerate(mustPath(t, filesystem, `C:\D`), EnumerateOptions{
			Recursive:   true,
			ErrorPolicy: testCase.policy,
		}))
		if diff := cmp.Diff([]string{`C:\D\a.txt`, `C:\D\b.txt`, `C:\D\S`}, result); diff != "" {
			t.Errorf("%s: unexpected entries (-expected +actual):\n%s", testCase.description, diff)
		}
		if testCase.expectError && !errors.Is(err, testCase.code) {
			t.Errorf("%s: unexpected error: %v", testCase.description, err)
		} else if !testCase.expectError && err != nil {
			t.Errorf("%s: unexpected failure: %v", testCase.description, err)
		}
		if count := backend.OpenCursors(); count != 0 {
			t.Errorf("%s: cursors leaked: %d", testCase.description, count)
		}
	}
}

func TestEnumerateSuppressionLogging(t *testing.T) {
	_, backend := newTestFileSystem(t)
	output := &bytes.Buffer{}
	filesystem := New(backend, logging.NewLogger(logging.LevelDebug, output).Sublogger("filesystem"))
	backend.FailNext(memory.OperationFindFirst, `C:\D\S`, native.ErrorAccessDenied)
	options := EnumerateOptions{Recursive: true, ErrorPolicy: ErrorPolicySuppress}
	if _, err := collect(filesystem.Enumerate(mustPath(t, filesystem, `C:\D`), options)); err != nil {
		t.Fatal("unable to enumerate:", err)
	}
	if !strings.Contains(output.String(), `[filesystem] Suppressed enumeration failure for C:\D\S`) {
		t.Error("suppression not logged:", output.String())
	}
}

func TestEnumerateInvalidPattern(t *testing.T) {
	filesystem, backend := newTestFileSystem(t)
	_, err := collect(filesystem.Enumerate(mustPath(t, filesystem, `C:\D`), EnumerateOptions{Pattern: `S\*`}))
	if !errors.Is(err, ErrInvalidPath) {
		t.Error("pattern with separator produced unexpected error:", err)
	}
	if count := backend.OpenCursors(); count != 0 {
		t.Error("cursors leaked:", count)
	}
}

func TestEnumerateTyped(t *testing.T) {
	filesystem, _ := newTestFileSystem(t)
	directory := mustPath(t, filesystem, `C:\D`)
	options := EnumerateOptions{Recursive: true, Filter: FilterDirectories}

	// Files ignore the requested filter.
	var sizes []uint64
	for file, err := range filesystem.EnumerateFiles(directory, options) {
		if err != nil {
			t.Fatal("unable to enumerate files:", err)
		}
		sizes = append(sizes, file.Size())
	}
	if diff := cmp.Diff([]uint64{10, 20, 5}, sizes); diff != "" {
		t.Errorf("unexpected file sizes (-expected +actual):\n%s", diff)
	}

	// Directories carry metadata.
	var names []string
	for detail, err := range filesystem.EnumerateDirectories(directory, EnumerateOptions{Recursive: true}) {
		if err != nil {
			t.Fatal("unable to enumerate directories:", err)
		} else if _, err := detail.LastWriteTime(); err != nil {
			t.Error("directory lacks metadata:", err)
		}
		names = append(names, detail.Name())
	}
	if diff := cmp.Diff([]string{"S"}, names); diff != "" {
		t.Errorf("unexpected directory names (-expected +actual):\n%s", diff)
	}

	// Paths are produced in the requested form.
	var extended []string
	for path, err := range filesystem.EnumeratePaths(directory, EnumerateOptions{Filter: FilterFiles}, paths.FormExtended) {
		if err != nil {
			t.Fatal("unable to enumerate paths:", err)
		}
		extended = append(extended, path)
	}
	if diff := cmp.Diff([]string{`\\?\C:\D\a.txt`, `\\?\C:\D\b.txt`}, extended); diff != "" {
		t.Errorf("unexpected paths (-expected +actual):\n%s", diff)
	}
}

func TestErrorPolicyText(t *testing.T) {
	var policy ErrorPolicy
	if err := policy.UnmarshalText([]byte("suppress")); err != nil || policy != ErrorPolicySuppress {
		t.Error("unable to unmarshal policy:", err)
	}
	if text, err := policy.MarshalText(); err != nil || string(text) != "suppress" {
		t.Error("unable to marshal policy:", err)
	}
	if err := policy.UnmarshalText([]byte("ignore")); err == nil {
		t.Error("unknown policy accepted")
	}
}
