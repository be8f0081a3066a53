package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/background.yaml": &fstest.MapFile{Data: []byte("entityCount: 12\n")},
	}
}

// TestIsInitialized covers the initialised flag.
func TestIsInitialized(t *testing.T) {
	initialized = false

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	initialized = false
}

// TestNotInitialized checks every accessor refuses to run before Init.
func TestNotInitialized(t *testing.T) {
	initialized = false

	if _, err := Open("data/background.yaml"); err == nil {
		t.Error("Expected error when calling Open() before Init()")
	} else if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}

	if _, err := ReadFile("data/background.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	}

	if Exists("data/background.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "plain path", path: "data/background.yaml"},
		{name: "dot prefix", path: "./data/background.yaml"},
		{name: "invalid prefix", path: "assets/background.yaml", wantErr: true},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "entityCount: 12\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/background.yaml") {
		t.Error("Exists should find data/background.yaml")
	}
	if Exists("data/nope.yaml") {
		t.Error("Exists should not find data/nope.yaml")
	}
}
