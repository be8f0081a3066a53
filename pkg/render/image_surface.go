package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an Ebitengine image with the vector package.
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface wraps an ebiten image. A nil image yields a surface that
// reports a zero size and ignores every call.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Size implements Surface.
func (s *ImageSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill implements Surface. ebiten.Image.Fill replaces pixels, so the overlay
// is drawn as a rectangle to keep source-over blending.
func (s *ImageSurface) Fill(clr color.Color) {
	if s.img == nil {
		return
	}
	w, h := s.Size()
	vector.DrawFilledRect(s.img, 0, 0, float32(w), float32(h), clr, false)
}

// StrokeLine implements Surface.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// StrokePath implements Surface.
func (s *ImageSurface) StrokePath(points []Point, width float64, clr color.Color) {
	if s.img == nil {
		return
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

// FillCircle implements Surface.
func (s *ImageSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if s.img == nil || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), clr, true)
}
