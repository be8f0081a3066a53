//go:build !mobile

package utils

import "os"

// IsMobile reports whether the app runs as a touch-only mobile build.
// BG_MOBILE_EMULATE=1 switches a desktop build into touch mode for testing.
func IsMobile() bool {
	return os.Getenv("BG_MOBILE_EMULATE") == "1"
}
