package logging

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestNilLogger tests that a nil logger is usable.
func TestNilLogger(t *testing.T) {
	var logger *Logger
	logger.Error(errors.New("error"))
	logger.Infof("%d", 1)
	logger.Sublogger("child").Trace("trace")
	if logger.Sublogger("child") != nil {
		t.Error("sublogger of nil logger is non-nil")
	}
	if logger.Level() != LevelDisabled {
		t.Error("nil logger reports enabled level")
	}
	fmt.Fprintln(logger.Writer(LevelError), "discarded")
}

// TestLevelFiltering tests that lines above the logger's level are dropped.
func TestLevelFiltering(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelInfo, buffer)
	logger.Info("visible")
	logger.Debug("hidden")
	logger.Tracef("hidden %d", 2)
	logger.Warnf("careful %s", "now")
	output := buffer.String()
	if !strings.Contains(output, "visible") {
		t.Error("info line missing")
	}
	if strings.Contains(output, "hidden") {
		t.Error("debug or trace line emitted")
	}
	if !strings.Contains(output, "Warning: careful now") {
		t.Error("warning line missing")
	}
}

// TestSubloggerPrefix tests that subloggers prefix their lines.
func TestSubloggerPrefix(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelDebug, buffer).Sublogger("filesystem").Sublogger("enumerate")
	logger.Debugf("opened cursor for %s", `C:\`)
	if !strings.Contains(buffer.String(), `[filesystem.enumerate] opened cursor for C:\`) {
		t.Error("unexpected output:", buffer.String())
	}
	if logger.Level() != LevelDebug {
		t.Error("sublogger didn't inherit level")
	}
}

// TestWriter tests line splitting by the logger writer.
func TestWriter(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelInfo, buffer)
	writer := logger.Writer(LevelInfo)
	fmt.Fprint(writer, "first\r\nsec")
	fmt.Fprint(writer, "ond\nincomplete")
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 2 {
		t.Fatal("unexpected line count:", len(lines))
	}
	if !strings.HasSuffix(lines[0], "first") || !strings.HasSuffix(lines[1], "second") {
		t.Error("unexpected lines:", lines)
	}
	if logger.Writer(LevelDebug) == writer {
		t.Error("disabled level produced live writer")
	}
}

// TestLevelText tests level name conversion.
func TestLevelText(t *testing.T) {
	for _, level := range []Level{LevelDisabled, LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace} {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatal("unable to marshal level:", err)
		}
		var decoded Level
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatal("unable to unmarshal level:", err)
		} else if decoded != level {
			t.Error("level mismatch:", decoded, "!=", level)
		}
	}
	var level Level
	if err := level.UnmarshalText([]byte("verbose")); err == nil {
		t.Error("invalid level name accepted")
	} else if !strings.Contains(err.Error(), "verbose") {
		t.Error("error does not name invalid level:", err)
	} else if level != LevelDisabled {
		t.Error("level modified by failed unmarshal:", level)
	}
}
