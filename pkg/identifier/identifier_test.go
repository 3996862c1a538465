package identifier

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mutagen-io/longpath/pkg/encoding"
)

const (
	// expectedIdentifierLength is the expected length for identifiers.
	expectedIdentifierLength = requiredPrefixLength + 1 + targetBase62Length
)

// TestLengthRelationships tests the mathematical relationship between
// collisionResistantLength and targetBase62Length.
func TestLengthRelationships(t *testing.T) {
	if targetBase62Length != int(math.Ceil(collisionResistantLength*8*math.Log(2)/math.Log(62))) {
		t.Error("target base62 length incorrect for collision resistant length")
	}
}

// TestIdentifierCreation tests identifier creation.
func TestIdentifierCreation(t *testing.T) {
	// Set up test cases.
	testCases := []string{
		PrefixTemporaryDirectory,
		PrefixTemporaryFile,
	}

	// Process test cases.
	for _, prefix := range testCases {
		// Create an identifier with the specified prefix.
		identifier, err := New(prefix)
		if err != nil {
			t.Fatal("unable to create identifier:", err)
		}

		// Ensure that the prefix is present.
		if !strings.HasPrefix(identifier, prefix+"_") {
			t.Error("identifier does not have correct prefix")
		}

		// Ensure that the length is what's expected.
		if len(identifier) != expectedIdentifierLength {
			t.Error("identifier has unexpected length")
		}

		// Ensure that the identifier is valid.
		if !IsValid(identifier) {
			t.Error("generated identifier classified as invalid:", identifier)
		}
	}
}

// TestIdentifierUniqueness tests that successive identifiers differ.
func TestIdentifierUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		identifier, err := New(PrefixTemporaryDirectory)
		if err != nil {
			t.Fatal("unable to create identifier:", err)
		} else if seen[identifier] {
			t.Fatal("duplicate identifier generated:", identifier)
		}
		seen[identifier] = true
	}
}

// TestPrefixLengthEnforcement tests that identifier creation fails with an
// invalid prefix length.
func TestPrefixLengthEnforcement(t *testing.T) {
	if _, err := New("xyz"); err == nil {
		t.Error("invalid prefix length accepted")
	}
}

// TestInvalidPrefixCharacter tests that identifier creation fails when a prefix
// contains invalid characters.
func TestInvalidPrefixCharacter(t *testing.T) {
	if _, err := New("XYZW"); err == nil {
		t.Error("invalid prefix characters accepted")
	}
}

// TestIsValid tests that IsValid behaves correctly for an assortment of values.
func TestIsValid(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		value       string
		expectValid bool
	}{
		{"", false},
		{"abc", false},
		{"ltmp_0000000000000000000000", true},
		{"ltmp_jndACgB0qejgkorhU21q4o", true},
		{"ltmp-jndACgB0qejgkorhU21q4o", false},
		{"LTMP_jndACgB0qejgkorhU21q4o", false},
		{"ltmp_jndACgB0qejgkorhU21q4+", false},
		{"ltmp_jndACgB0qejgkorhU21q4oA", false},
		{"75a0fdc4-5c08-4aa4-99b5-154350dea3db", false},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if valid := IsValid(testCase.value); valid && !testCase.expectValid {
			t.Error("identifier unexpectedly classified as valid:", testCase.value)
		} else if !valid && testCase.expectValid {
			t.Error("identifier unexpectedly classified as invalid:", testCase.value)
		}
	}
}

// TestLeftPadRemoval tests that the original bytes of an identifier can be
// extracted after padding in Base62 encoding.
func TestLeftPadRemoval(t *testing.T) {
	// Set up test cases.
	testCases := [][]byte{
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01},
		{0xf2, 0xa7, 0x30, 0x90, 0x01, 0x7b, 0x00, 0x01, 0xff, 0xfe, 0x0f, 0x1f, 0xa1, 0x0a, 0x0f, 0xf0},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}

	// Process test cases.
	for _, value := range testCases {
		// Encode and left-pad the value.
		encoded := encoding.EncodeBase62(value)
		padded := strings.Repeat(encoding.Base62Alphabet[:1], targetBase62Length-len(encoded)) + encoded

		// Decode the resulting string.
		decoded, err := encoding.DecodeBase62(padded)
		if err != nil {
			t.Error("unable to decode value:", err)
		} else if !bytes.Equal(decoded[len(decoded)-collisionResistantLength:], value) {
			t.Error("decoded and extracted bytes do not match original")
		}
	}
}
