package paths

import (
	"strings"
	"testing"
)

func TestToExtended(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		path     string
		expected string
	}{
		{`C:\`, `\\?\C:\`},
		{`C:\temp\file.txt`, `\\?\C:\temp\file.txt`},
		{`C:\temp\`, `\\?\C:\temp`},
		{`\\server\share\file.txt`, `\\?\UNC\server\share\file.txt`},
		{`\\?\C:\temp`, `\\?\C:\temp`},
		{`\\?\UNC\server\share`, `\\?\UNC\server\share`},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if result := ToExtended(testCase.path); result != testCase.expected {
			t.Errorf("ToExtended(%q) = %q, expected %q", testCase.path, result, testCase.expected)
		}
	}
}

func TestToRegular(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		path     string
		expected string
	}{
		{`\\?\C:\`, `C:\`},
		{`\\?\C:\temp\file.txt`, `C:\temp\file.txt`},
		{`\\?\UNC\server\share`, `\\server\share`},
		{`\\?\UNC\server\share\a\`, `\\server\share\a`},
		{`C:\temp`, `C:\temp`},
		{`\\server\share`, `\\server\share`},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if result := ToRegular(testCase.path); result != testCase.expected {
			t.Errorf("ToRegular(%q) = %q, expected %q", testCase.path, result, testCase.expected)
		}
	}
}

// TestConversionRoundTrip verifies that regular paths survive conversion to
// extended form and back.
func TestConversionRoundTrip(t *testing.T) {
	// Set up test cases.
	testCases := []string{
		`C:\`,
		`C:\a`,
		`C:\a\b\`,
		`z:\deep\` + strings.Repeat(`component\`, 40) + "leaf.txt",
		`\\server\share`,
		`\\server\share\`,
		`\\server\share\folder\file.txt`,
	}

	// Process test cases.
	for _, path := range testCases {
		extended := ToExtended(path)
		if !strings.HasPrefix(extended, LocalExtendedPrefix) {
			t.Errorf("extended form of %q lacks prefix: %q", path, extended)
		}
		if result := ToRegular(extended); result != TrimTrailingSeparators(path) {
			t.Errorf("round trip of %q produced %q", path, result)
		}
	}
}

func TestExceedsRegularLimit(t *testing.T) {
	if ExceedsRegularLimit(`C:\short`) {
		t.Error("short path reported as exceeding limit")
	}
	long := `\\?\C:\` + strings.Repeat("x", MaxRegularPathLength)
	if !ExceedsRegularLimit(long) {
		t.Error("long path not reported as exceeding limit")
	}
}

func TestValidateCharacters(t *testing.T) {
	if err := ValidateCharacters(`C:\perfectly fine\file (1).txt`); err != nil {
		t.Error("valid path rejected:", err)
	}
	for _, c := range []byte{0x00, 0x1f, '"', '<', '>', '|'} {
		if err := ValidateCharacters(`C:\a` + string([]byte{c})); err == nil {
			t.Errorf("character 0x%02x accepted", c)
		}
	}
}

func TestCombine(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		elements []string
		expected string
	}{
		{[]string{`C:\`, "a"}, `C:\a`},
		{[]string{`C:\a`, "b", "c"}, `C:\a\b\c`},
		{[]string{`C:\a\`, "b"}, `C:\a\b`},
		{[]string{`C:\a`, `\b`}, `\b`},
		{[]string{`C:\a`, `D:\b`}, `D:\b`},
		{[]string{"", "a", ""}, "a"},
		{[]string{`\\?\C:\dir`, "*"}, `\\?\C:\dir\*`},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if result := Combine(testCase.elements...); result != testCase.expected {
			t.Errorf("Combine(%q) = %q, expected %q", testCase.elements, result, testCase.expected)
		}
	}
}

func TestName(t *testing.T) {
	if name := Name(`C:\a\b\`); name != "b" {
		t.Error("unexpected name:", name)
	}
	if name := Name("plain"); name != "plain" {
		t.Error("unexpected name for plain component:", name)
	}
}
