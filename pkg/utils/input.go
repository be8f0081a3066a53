// Package utils holds small Ebitengine helpers shared by the app.
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerPosition returns the current pointer position: the first active
// touch if any, the mouse cursor otherwise.
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// IsTouchJustReleased reports whether the last touch was lifted this tick.
// A lifted finger leaves the surface, so the pointer becomes absent.
func IsTouchJustReleased() bool {
	return len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 && len(ebiten.AppendTouchIDs(nil)) == 0
}

// HasActivePointer reports whether a pointer is over the surface at all.
// Touch screens have no hover, so on mobile only a finger down counts.
func HasActivePointer() bool {
	if !IsMobile() {
		return true
	}
	return len(ebiten.AppendTouchIDs(nil)) > 0
}

// InBounds reports whether (x, y) lies on a width x height surface.
func InBounds(x, y, width, height int) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}

// IsAnyKeyJustPressed reports whether one of keys was pressed this tick.
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
