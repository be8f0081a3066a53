package systems

import (
	"math"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

// ProximitySystem highlights entities near the pointer.
type ProximitySystem struct {
	em     *ecs.EntityManager
	radius float64
}

// NewProximitySystem creates a proximity system with the given highlight radius.
func NewProximitySystem(em *ecs.EntityManager, radius float64) *ProximitySystem {
	return &ProximitySystem{em: em, radius: radius}
}

// Update sets each entity's highlight flag: active iff the pointer is
// present and closer than the radius. An absent pointer clears every flag.
func (s *ProximitySystem) Update(pointer components.Pointer) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.HighlightComponent](s.em)

	for _, id := range ids {
		hl, _ := ecs.GetComponent[*components.HighlightComponent](s.em, id)
		if !pointer.Present {
			hl.Active = false
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		hl.Active = math.Hypot(pointer.X-pos.X, pointer.Y-pos.Y) < s.radius
	}
}
