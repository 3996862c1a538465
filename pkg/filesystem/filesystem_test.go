package filesystem

import (
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/mutagen-io/longpath/pkg/filesystem/native/memory"
)

// testTime is the fixed clock value used by test filesystems.
var testTime = time.Date(2021, time.March, 14, 15, 9, 26, 0, time.UTC)

// newTestFileSystem creates a filesystem backed by an in-memory native
// implementation with a C: volume, a server\share share, and the tree:
//
//	C:\D\a.txt (10 bytes)
//	C:\D\b.txt (20 bytes)
//	C:\D\S\c.txt (5 bytes)
func newTestFileSystem(t *testing.T) (*FileSystem, *memory.FileSystem) {
	t.Helper()
	backend := memory.New()
	backend.SetClock(func() time.Time { return testTime })
	backend.AddVolume('C')
	backend.AddShare("server", "share")
	files := map[string]string{
		`C:\D\a.txt`:   strings.Repeat("a", 10),
		`C:\D\b.txt`:   strings.Repeat("b", 20),
		`C:\D\S\c.txt`: strings.Repeat("c", 5),
	}
	for path, content := range files {
		if err := backend.AddFile(path, []byte(content)); err != nil {
			t.Fatal("unable to create test file:", err)
		}
	}
	return New(backend, nil), backend
}

// mustPath creates a path descriptor or fails the test.
func mustPath(t *testing.T, filesystem *FileSystem, path string) *Path {
	t.Helper()
	result, err := filesystem.Path(path)
	if err != nil {
		t.Fatalf("unable to create path for %q: %v", path, err)
	}
	return result
}

// collect drains an enumeration, returning the regular forms of the entries
// produced before any failure.
func collect(sequence iter.Seq2[*Entry, error]) ([]string, error) {
	var result []string
	for entry, err := range sequence {
		if err != nil {
			return result, err
		}
		result = append(result, entry.Path.Regular())
	}
	return result, nil
}
