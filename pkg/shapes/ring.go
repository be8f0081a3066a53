package shapes

import (
	"image/color"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

// Ring draws the atoms as a closed polygon with a dot on every atom and a
// larger dot at the centre.
func Ring(s render.Surface, pose render.Pose, size float64, st components.RingState, clr color.Color) {
	if len(st.Atoms) == 0 {
		return
	}
	tr := render.NewTransform(pose)

	outline := make([]render.Point, 0, len(st.Atoms)+1)
	for _, atom := range st.Atoms {
		outline = append(outline, tr.Apply(atom.X, atom.Y))
	}
	outline = append(outline, outline[0])
	s.StrokePath(outline, 1, clr)

	for _, p := range outline[:len(st.Atoms)] {
		s.FillCircle(p.X, p.Y, size*0.6, clr)
	}

	s.FillCircle(pose.X, pose.Y, size*0.8, clr)
}
