package longpath

import (
	"strings"
	"testing"
)

// TestVersion tests that the version string is computed from its components.
func TestVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("version string is empty")
	}
	if strings.Contains(Version, " ") {
		t.Error("version string contains spaces")
	}
	if VersionTag != "" && !strings.HasSuffix(Version, "-"+VersionTag) {
		t.Error("version string missing tag:", Version)
	}
}

// TestLegalNotice tests that the legal notice covers the bundled dependencies.
func TestLegalNotice(t *testing.T) {
	for _, dependency := range []string{"cobra", "go-winio", "doublestar", "yaml"} {
		if !strings.Contains(LegalNotice, dependency) {
			t.Error("legal notice missing dependency:", dependency)
		}
	}
}
