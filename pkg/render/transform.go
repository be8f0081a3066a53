package render

import "github.com/hajimehoshi/ebiten/v2"

// Pose places glyph-local geometry on the canvas: rotate by Rotation around
// the origin, then translate to (X, Y).
type Pose struct {
	X, Y     float64
	Rotation float64
}

// GeoM returns the pose as an affine matrix.
func (p Pose) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Rotate(p.Rotation)
	g.Translate(p.X, p.Y)
	return g
}

// Transform maps glyph-local points into canvas space.
type Transform struct {
	geoM ebiten.GeoM
}

// NewTransform builds the transform of a pose.
func NewTransform(p Pose) Transform {
	return Transform{geoM: p.GeoM()}
}

// Apply maps one local point.
func (t Transform) Apply(x, y float64) Point {
	cx, cy := t.geoM.Apply(x, y)
	return Point{X: cx, Y: cy}
}

// ApplyAll maps a list of local points.
func (t Transform) ApplyAll(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = t.Apply(p.X, p.Y)
	}
	return out
}
