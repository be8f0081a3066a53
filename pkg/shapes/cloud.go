package shapes

import (
	"image/color"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

// Cloud draws three overlapping lobes.
func Cloud(s render.Surface, pose render.Pose, size float64, clr color.Color) {
	w := size * 3
	h := size * 2
	tr := render.NewTransform(pose)

	left := tr.Apply(-w/4, 0)
	right := tr.Apply(w/4, 0)
	top := tr.Apply(0, -h/3)

	s.FillCircle(left.X, left.Y, h/2, clr)
	s.FillCircle(right.X, right.Y, h/2, clr)
	s.FillCircle(top.X, top.Y, h/1.8, clr)
}
