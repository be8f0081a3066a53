//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir creates the app's private data directory before gdata
// opens it. gdata stores under /data/data/{package}/ on Android but does not
// create the subdirectory itself.
func EnsureStorageDir() error {
	pkg, err := detectAndroidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "preferences")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return nil
}

// detectAndroidPackage reads the package name from /proc/self/cmdline.
func detectAndroidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		name = append(name, ch)
	}
	if len(name) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return string(name), nil
}

// GetStoragePath returns the app's data directory, for log output.
func GetStoragePath() string {
	pkg, err := detectAndroidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg)
}
