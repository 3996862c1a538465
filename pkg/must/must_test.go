package must

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mutagen-io/longpath/pkg/filesystem/native"
	"github.com/mutagen-io/longpath/pkg/filesystem/native/memory"
	"github.com/mutagen-io/longpath/pkg/logging"
)

// failingCloser is an io.Closer that always fails.
type failingCloser struct{}

// Close implements io.Closer.Close.
func (failingCloser) Close() error {
	return errors.New("close failed")
}

func TestCloseWarns(t *testing.T) {
	buffer := &bytes.Buffer{}
	Close(failingCloser{}, logging.NewLogger(logging.LevelWarn, buffer))
	if !strings.Contains(buffer.String(), "Unable to close: close failed") {
		t.Error("close failure not logged:", buffer.String())
	}
}

func TestFindCloseReleasesCursor(t *testing.T) {
	filesystem := memory.New()
	filesystem.AddVolume('C')
	if err := filesystem.AddFile(`C:\file`, nil); err != nil {
		t.Fatal("unable to create file:", err)
	}
	cursor, _, err := filesystem.FindFirst(`\\?\C:\*`)
	if err != nil {
		t.Fatal("unable to open cursor:", err)
	}
	buffer := &bytes.Buffer{}
	logger := logging.NewLogger(logging.LevelWarn, buffer)
	FindClose(filesystem, cursor, logger)
	if filesystem.OpenCursors() != 0 {
		t.Error("cursor not released")
	}
	FindClose(filesystem, cursor, logger)
	if !strings.Contains(buffer.String(), native.ErrorInvalidHandle.Error()) {
		t.Error("double close not logged:", buffer.String())
	}
}

func TestFprintf(t *testing.T) {
	buffer := &bytes.Buffer{}
	Fprintf(buffer, nil, "%s=%d", "size", 35)
	if buffer.String() != "size=35" {
		t.Error("unexpected output:", buffer.String())
	}
}
