package native

import (
	"testing"
)

func TestAttributesString(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		attributes Attributes
		expected   string
	}{
		{0, "none"},
		{InvalidAttributes, "invalid"},
		{AttributeReadOnly, "readonly"},
		{AttributeArchive | AttributeReadOnly, "readonly|archive"},
		{AttributeDirectory | AttributeReparsePoint, "directory|reparse"},
		{AttributeHidden | 0x100000, "hidden|0x100000"},
	}

	// Process test cases.
	for _, testCase := range testCases {
		if result := testCase.attributes.String(); result != testCase.expected {
			t.Errorf("unexpected string for 0x%x: %q != %q", uint32(testCase.attributes), result, testCase.expected)
		}
	}
}

func TestParseAttributes(t *testing.T) {
	if result, ok := ParseAttributes("readonly|Hidden, archive"); !ok {
		t.Fatal("unable to parse attribute names")
	} else if result != AttributeReadOnly|AttributeHidden|AttributeArchive {
		t.Error("unexpected attribute mask:", result)
	}
	if _, ok := ParseAttributes("readonly|bogus"); ok {
		t.Error("unknown attribute name accepted")
	}
}

func TestAttributesPredicates(t *testing.T) {
	value := AttributeDirectory | AttributeHidden
	if !value.IsDirectory() {
		t.Error("directory bit not detected")
	}
	if !value.Has(AttributeHidden) || value.Has(AttributeHidden|AttributeSystem) {
		t.Error("mask checks incorrect")
	}
	if InvalidAttributes.IsDirectory() {
		t.Error("invalid attributes treated as directory")
	}
}

func TestErrno(t *testing.T) {
	if message := ErrorPathNotFound.Error(); message != "ERROR_PATH_NOT_FOUND (3)" {
		t.Error("unexpected error message:", message)
	}
	if message := Errno(9999).Error(); message != "native error 9999" {
		t.Error("unexpected message for unknown code:", message)
	}
	if !ErrorFileExists.Exists() || !ErrorAlreadyExists.Exists() || ErrorAccessDenied.Exists() {
		t.Error("existence classification incorrect")
	}
	if !ErrorBadNetName.NotFound() || ErrorDirectory.NotFound() {
		t.Error("absence classification incorrect")
	}
}
