package systems

import (
	"math"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

// MotionSystem integrates entity motion one tick at a time.
//
// Every tick it moves each entity by its velocity, bounces it off the
// surface edges, advances its rotation and, for waveforms, the beat phase.
type MotionSystem struct {
	em            *ecs.EntityManager
	width, height float64
}

// NewMotionSystem creates a motion system for a width x height surface.
func NewMotionSystem(em *ecs.EntityManager, width, height float64) *MotionSystem {
	s := &MotionSystem{em: em}
	s.Resize(width, height)
	return s
}

// Resize changes the bounds used for reflection. Positions are left alone;
// entities outside the new bounds are pulled back on their next tick.
func (s *MotionSystem) Resize(width, height float64) {
	s.width = math.Max(width, 0)
	s.height = math.Max(height, 0)
}

// Update advances every entity by one tick.
func (s *MotionSystem) Update() {
	ids := ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.GlyphComponent](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		glyph, _ := ecs.GetComponent[*components.GlyphComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		pos.X, vel.VX = reflect(pos.X, vel.VX, glyph.Size, s.width)
		pos.Y, vel.VY = reflect(pos.Y, vel.VY, glyph.Size, s.height)

		if rot, ok := ecs.GetComponent[*components.RotationComponent](s.em, id); ok {
			rot.Angle += rot.Speed
		}

		if glyph.Kind == components.GlyphWave {
			glyph.Wave.Phase += glyph.Wave.Speed
		}
	}
}

// reflect keeps coordinate x inside [margin, limit-margin] and points the
// velocity back inside when x crossed an edge. The margin is capped at half
// the limit, so the result always lies in [0, limit].
func reflect(x, v, margin, limit float64) (float64, float64) {
	margin = math.Min(margin, limit/2)
	switch {
	case x < margin:
		return margin, math.Abs(v)
	case x > limit-margin:
		return limit - margin, -math.Abs(v)
	}
	return x, v
}
