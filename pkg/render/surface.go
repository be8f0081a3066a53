// Package render defines the 2D drawing surface the background paints on and
// its implementations: an Ebitengine image, a tcell terminal screen and an
// in-memory recorder.
package render

import "image/color"

// Point is a vertex in canvas space.
type Point struct {
	X, Y float64
}

// Surface is a canvas-sized 2D drawing target.
//
// Colours are composited source-over; none of the calls replaces what is
// already on the surface.
type Surface interface {
	// Size returns the surface dimensions in canvas pixels.
	Size() (width, height int)

	// Fill composites clr over the whole surface. With a translucent colour
	// this fades the previous frame instead of clearing it.
	Fill(clr color.Color)

	// StrokeLine draws a straight segment.
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)

	// StrokePath draws an open polyline through points.
	StrokePath(points []Point, width float64, clr color.Color)

	// FillCircle draws a filled disc.
	FillCircle(cx, cy, radius float64, clr color.Color)
}
