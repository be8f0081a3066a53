//go:build !android

package utils

// EnsureStorageDir is a no-op outside Android; gdata creates its own
// directory there.
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath returns "" outside Android.
func GetStoragePath() string {
	return ""
}
