package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/filesystem/native/memory"
	"github.com/mutagen-io/longpath/pkg/logging"
	"github.com/mutagen-io/longpath/pkg/longpath"
)

// newTestFileSystem creates a filesystem over an in-memory native interface
// with a single C: volume.
func newTestFileSystem() *filesystem.FileSystem {
	host := memory.New()
	host.AddVolume('C')
	return filesystem.New(host, nil)
}

func TestExcluder(t *testing.T) {
	// Set up the enumeration root.
	host := newTestFileSystem()
	root, err := host.Path(`C:\project`)
	if err != nil {
		t.Fatal("unable to create root path:", err)
	}

	// Create the excluder.
	excluder, err := newExcluder(root, []string{"**/*.tmp", "build", "Vendor/**"})
	if err != nil {
		t.Fatal("unable to create excluder:", err)
	}

	// Set up test cases.
	testCases := []struct {
		path     string
		excluded bool
	}{
		{`C:\project\main.go`, false},
		{`C:\project\scratch.tmp`, true},
		{`C:\project\deep\nested\SCRATCH.TMP`, true},
		{`C:\project\build`, true},
		{`C:\project\src\build`, true},
		{`C:\project\vendor\module\file.go`, true},
		{`C:\project\src\vendor.go`, false},
	}

	// Process test cases.
	for _, testCase := range testCases {
		path, err := host.Path(testCase.path)
		if err != nil {
			t.Fatalf("unable to create path %s: %v", testCase.path, err)
		}
		if excluded := excluder.excluded(path); excluded != testCase.excluded {
			t.Errorf("exclusion of %s: %t != %t", testCase.path, excluded, testCase.excluded)
		}
	}
}

func TestExcluderRelative(t *testing.T) {
	host := newTestFileSystem()
	root, err := host.Path(`C:\project`)
	if err != nil {
		t.Fatal("unable to create root path:", err)
	}
	path, err := host.Path(`C:\project\a\b.txt`)
	if err != nil {
		t.Fatal("unable to create path:", err)
	}
	excluder, err := newExcluder(root, nil)
	if err != nil {
		t.Fatal("unable to create excluder:", err)
	}
	if relative := excluder.relative(path); relative != "a/b.txt" {
		t.Error("unexpected relative path:", relative)
	}
	if excluder.excluded(path) {
		t.Error("path excluded without patterns")
	}
}

func TestExcluderInvalidPattern(t *testing.T) {
	host := newTestFileSystem()
	root, err := host.Path(`C:\project`)
	if err != nil {
		t.Fatal("unable to create root path:", err)
	}
	if _, err := newExcluder(root, []string{"[unterminated"}); err == nil {
		t.Error("invalid pattern accepted")
	}
}

func TestFormatSize(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		size     uint64
		human    bool
		expected string
	}{
		{0, false, "0"},
		{1536, false, "1536"},
		{512, true, "512 B"},
		{1536, true, "1.5 KiB"},
		{5 * 1024 * 1024, true, "5.0 MiB"},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if result := formatSize(testCase.size, testCase.human); result != testCase.expected {
			t.Errorf("formatSize(%d, %t) = %q, expected %q",
				testCase.size, testCase.human, result, testCase.expected,
			)
		}
	}
	if count := formatCount(1234567); count != "1,234,567" {
		t.Error("unexpected count formatting:", count)
	}
}

func TestLoggingLevel(t *testing.T) {
	// Restore debugging state when finished.
	defer func(enabled bool) {
		longpath.DebugEnabled = enabled
	}(longpath.DebugEnabled)

	longpath.DebugEnabled = false
	if level := loggingLevel(logging.LevelWarn); level != logging.LevelWarn {
		t.Error("level modified without debugging:", level)
	}
	longpath.DebugEnabled = true
	if level := loggingLevel(logging.LevelWarn); level != logging.LevelDebug {
		t.Error("level not raised with debugging:", level)
	}
	if level := loggingLevel(logging.LevelTrace); level != logging.LevelTrace {
		t.Error("level lowered with debugging:", level)
	}
}

func TestTouchTimes(t *testing.T) {
	// Restore flags when finished.
	defer func(created, accessed, modified string) {
		touchConfiguration.created = created
		touchConfiguration.accessed = accessed
		touchConfiguration.modified = modified
	}(touchConfiguration.created, touchConfiguration.accessed, touchConfiguration.modified)

	// Verify defaults.
	now := time.Date(2021, time.March, 14, 15, 9, 26, 0, time.UTC)
	touchConfiguration.created, touchConfiguration.accessed, touchConfiguration.modified = "", "", ""
	times, err := touchTimes(now)
	if err != nil {
		t.Fatal("unable to compute default times:", err)
	}
	expected := filesystem.Times{Accessed: &now, Written: &now}
	if diff := cmp.Diff(expected, times); diff != "" {
		t.Errorf("unexpected default times (-expected +actual):\n%s", diff)
	}

	// Verify explicit timestamps.
	touchConfiguration.created = "2020-01-02T03:04:05Z"
	times, err = touchTimes(now)
	if err != nil {
		t.Fatal("unable to compute explicit times:", err)
	}
	created := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.UTC)
	if times.Created == nil || !times.Created.Equal(created) {
		t.Error("creation time not parsed")
	} else if times.Accessed != nil || times.Written != nil {
		t.Error("unspecified times set alongside explicit time")
	}

	// Verify invalid timestamps.
	touchConfiguration.created = "yesterday"
	if _, err := touchTimes(now); err == nil {
		t.Error("invalid timestamp accepted")
	}
}
