// Package shapes is the glyph catalog of the background: pure geometric
// routines that paint one glyph onto a render.Surface at a given pose, size
// and colour.
//
// Each routine builds its geometry in glyph-local space (origin at the
// entity centre, unrotated) and maps it through the pose transform, so the
// same geometry renders on an ebiten image, a terminal or a recorder.
package shapes

import (
	"image/color"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

// Draw dispatches to the routine of the glyph kind.
func Draw(s render.Surface, glyph *components.GlyphComponent, pose render.Pose, clr color.Color) {
	switch glyph.Kind {
	case components.GlyphHelix:
		Helix(s, pose, glyph.Helix, clr)
	case components.GlyphRing:
		Ring(s, pose, glyph.Size, glyph.Ring, clr)
	case components.GlyphNetwork:
		Network(s, pose, glyph.Size, glyph.Network, clr)
	case components.GlyphCloud:
		Cloud(s, pose, glyph.Size, clr)
	case components.GlyphWave:
		Wave(s, pose, glyph.Size, glyph.Wave, clr)
	}
}

// quadTo flattens a quadratic Bézier from p0 through control c to p1 into
// steps points (p0 excluded).
func quadTo(points []render.Point, p0, c, p1 render.Point, steps int) []render.Point {
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		points = append(points, render.Point{
			X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
			Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
		})
	}
	return points
}
