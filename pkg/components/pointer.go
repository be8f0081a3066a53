package components

// Pointer is the most recent pointer position in canvas space.
// The zero value is an absent pointer.
type Pointer struct {
	X, Y    float64
	Present bool
}

// PointerAt returns a present pointer at (x, y).
func PointerAt(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}
