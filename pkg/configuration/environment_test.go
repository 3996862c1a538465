package configuration

import (
	"path/filepath"
	"testing"

	"github.com/mutagen-io/longpath/pkg/filesystem"
	"github.com/mutagen-io/longpath/pkg/logging"
)

func TestLoadEnvironment(t *testing.T) {
	path := writeTestFile(t, "longpath.env", "LONGPATH_PATTERN=*.txt\nLONGPATH_LOG_LEVEL=trace\n")
	t.Setenv(EnvironmentLogLevel, "info")
	environment, err := LoadEnvironment(path)
	if err != nil {
		t.Fatal("unable to load environment:", err)
	}
	if pattern := environment[EnvironmentPattern]; pattern != "*.txt" {
		t.Error("environment file value not loaded:", pattern)
	}
	if level := environment[EnvironmentLogLevel]; level != "info" {
		t.Error("process environment did not take precedence:", level)
	}
}

func TestLoadEnvironmentMissing(t *testing.T) {
	t.Setenv(EnvironmentPattern, "*.bin")
	environment, err := LoadEnvironment(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal("unable to load environment without file:", err)
	} else if environment[EnvironmentPattern] != "*.bin" {
		t.Error("process environment not loaded")
	}
}

func TestApply(t *testing.T) {
	configuration := Default()
	err := configuration.Apply(map[string]string{
		EnvironmentLogLevel:    "debug",
		EnvironmentErrorPolicy: "suppress",
		EnvironmentPattern:     "*.log",
		"UNRELATED":            "value",
	})
	if err != nil {
		t.Fatal("unable to apply environment:", err)
	}
	if configuration.Logging.Level != logging.LevelDebug {
		t.Error("log level not overridden")
	}
	if configuration.Enumeration.ErrorPolicy != filesystem.ErrorPolicySuppress {
		t.Error("error policy not overridden")
	}
	if configuration.Enumeration.Pattern != "*.log" {
		t.Error("pattern not overridden")
	}
}

func TestApplyInvalid(t *testing.T) {
	// Set up test cases.
	testCases := []map[string]string{
		{EnvironmentLogLevel: "loud"},
		{EnvironmentErrorPolicy: "ignore"},
		{EnvironmentPattern: ""},
		{EnvironmentPattern: `a\b`},
	}

	// Process test cases.
	for _, environment := range testCases {
		if err := Default().Apply(environment); err == nil {
			t.Errorf("invalid environment applied successfully: %v", environment)
		}
	}
}
