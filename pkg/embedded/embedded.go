// Package embedded gives the rest of the module access to files embedded in
// the binary.
//
// //go:embed can only reach files below the declaring package, so the
// embed.FS lives in the repository root (embed.go) and is handed over here
// by Init. Call Init before loading anything.
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init installs the embedded data filesystem. It must run at the start of
// main, before any resource is loaded.
func Init(data fs.FS) {
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// normalize turns a caller path into an fs.FS path and checks its prefix.
// Paths must start with "data/".
func normalize(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// Open opens an embedded file.
func Open(path string) (fs.File, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return dataFS.Open(path)
}

// ReadFile reads an embedded file.
func ReadFile(path string) ([]byte, error) {
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether an embedded file exists.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
