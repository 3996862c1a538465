package encoding

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

type testMessageJSON struct {
	Name string
	Age  uint
}

const (
	testMessageJSONString = `{"Name":"George","Age":67}`
	testMessageJSONName   = "George"
	testMessageJSONAge    = 67
)

func TestLoadAndUnmarshalNonExistentPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	if !os.IsNotExist(LoadAndUnmarshal(path, nil)) {
		t.Error("expected LoadAndUnmarshal to pass through non-existence errors")
	}
}

func TestLoadAndUnmarshalDirectory(t *testing.T) {
	if LoadAndUnmarshal(t.TempDir(), nil) == nil {
		t.Error("expected LoadAndUnmarshal error when loading directory")
	}
}

func TestLoadAndUnmarshalUnmarshalFail(t *testing.T) {
	// Create an empty temporary file.
	path := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create temporary file:", err)
	}

	// Create a broken unmarshaling function.
	unmarshal := func(_ []byte) error {
		return errors.New("unmarshal failed")
	}

	// Attempt to load and unmarshal using a broken unmarshaling function.
	if LoadAndUnmarshal(path, unmarshal) == nil {
		t.Error("expected LoadAndUnmarshal to return an error")
	}
}

func TestLoadAndUnmarshal(t *testing.T) {
	// Write the test JSON to a temporary file.
	path := filepath.Join(t.TempDir(), "message.json")
	if err := os.WriteFile(path, []byte(testMessageJSONString), 0600); err != nil {
		t.Fatal("unable to write data to temporary file:", err)
	}

	// Create an unmarshaling function.
	value := &testMessageJSON{}
	unmarshal := func(data []byte) error {
		return json.Unmarshal(data, value)
	}

	// Attempt to load and unmarshal.
	if err := LoadAndUnmarshal(path, unmarshal); err != nil {
		t.Fatal("LoadAndUnmarshal failed:", err)
	}

	// Verify test value names.
	if value.Name != testMessageJSONName {
		t.Error("test message name mismatch:", value.Name, "!=", testMessageJSONName)
	}
	if value.Age != testMessageJSONAge {
		t.Error("test message age mismatch:", value.Age, "!=", testMessageJSONAge)
	}
}
