//go:build mobile

package utils

// IsMobile is always true in mobile builds.
func IsMobile() bool {
	return true
}
