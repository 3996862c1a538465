package native

import (
	"testing"
	"time"
)

func TestFileTimeRoundTrip(t *testing.T) {
	// Set up test cases.
	testCases := []time.Time{
		time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1650, time.June, 1, 12, 0, 0, 0, time.UTC),
		time.Unix(0, 0).UTC(),
		time.Date(2001, time.September, 9, 1, 46, 40, 0, time.UTC),
		time.Date(2024, time.February, 29, 23, 59, 59, 999999900, time.UTC),
		time.Date(2300, time.January, 1, 0, 0, 0, 500, time.UTC),
		time.Date(9999, time.December, 31, 23, 59, 59, 999999900, time.UTC),
	}

	// Process test cases.
	for _, expected := range testCases {
		if result := NewFileTime(expected).Time(); !result.Equal(expected) {
			t.Errorf("file time round trip mismatch: %v != %v", result, expected)
		}
	}
}

func TestFileTimeZero(t *testing.T) {
	epoch := time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)
	if result := (FileTime{}).Time(); !result.Equal(epoch) {
		t.Error("zero file time mismatch:", result, "!=", epoch)
	}
	if value := NewFileTime(epoch); value != (FileTime{}) {
		t.Error("Windows epoch not encoded as zero file time:", value)
	}
	if value := NewFileTime(time.Date(1500, time.January, 1, 0, 0, 0, 0, time.UTC)); value != (FileTime{}) {
		t.Error("time before Windows epoch not clamped:", value)
	}
}

func TestFileTimeSubTickTruncation(t *testing.T) {
	value := NewFileTime(time.Date(2300, time.January, 1, 0, 0, 0, 599, time.UTC))
	expected := time.Date(2300, time.January, 1, 0, 0, 0, 500, time.UTC)
	if result := value.Time(); !result.Equal(expected) {
		t.Error("sub-tick truncation mismatch:", result, "!=", expected)
	}
}

func TestFileTimeTicks(t *testing.T) {
	value := FileTime{LowDateTime: 0xD53E8000, HighDateTime: 0x019DB1DE}
	if ticks := value.Ticks(); ticks != epochDifference {
		t.Fatal("unexpected tick count:", ticks)
	}
	if !value.Time().Equal(time.Unix(0, 0)) {
		t.Error("Unix epoch not decoded correctly:", value.Time())
	}
}

func TestFindDataSize(t *testing.T) {
	data := &FindData{FileSizeHigh: 1, FileSizeLow: 2}
	if size := data.Size(); size != 1<<32|2 {
		t.Fatal("unexpected size:", size)
	}
	data.SetSize(5 << 32)
	if data.FileSizeHigh != 5 || data.FileSizeLow != 0 {
		t.Error("size halves not split correctly")
	}
}

func TestFindDataSymbolicLink(t *testing.T) {
	// Set up test cases.
	testCases := []struct {
		attributes Attributes
		tag        uint32
		expected   bool
	}{
		{AttributeReparsePoint | AttributeDirectory, ReparseTagSymbolicLink, true},
		{AttributeReparsePoint, ReparseTagSymbolicLink, true},
		{AttributeReparsePoint | AttributeDirectory, ReparseTagMountPoint, false},
		{AttributeDirectory, ReparseTagSymbolicLink, false},
		{AttributeNormal, 0, false},
	}

	// Process test cases.
	for i, testCase := range testCases {
		data := &FindData{Attributes: testCase.attributes, Reserved0: testCase.tag}
		if result := data.IsSymbolicLink(); result != testCase.expected {
			t.Errorf("test case %d: symbolic link detection mismatch: %t != %t", i, result, testCase.expected)
		}
	}
}

func TestFindDataSystemEntry(t *testing.T) {
	for _, name := range []string{".", ".."} {
		if !(&FindData{Name: name}).IsSystemEntry() {
			t.Errorf("%q not treated as system entry", name)
		}
	}
	for _, name := range []string{"...", ".hidden", "a"} {
		if (&FindData{Name: name}).IsSystemEntry() {
			t.Errorf("%q treated as system entry", name)
		}
	}
}
