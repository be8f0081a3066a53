package systems

import (
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

// FlowSystem moves flow tokens along their links.
type FlowSystem struct {
	em *ecs.EntityManager
}

// NewFlowSystem creates a flow system.
func NewFlowSystem(em *ecs.EntityManager) *FlowSystem {
	return &FlowSystem{em: em}
}

// Update advances every token by one tick. Tokens are never removed.
func (s *FlowSystem) Update(flows []components.FlowToken) {
	for i := range flows {
		flows[i].Advance()
	}
}

// Position returns the canvas position of a token: the interpolation
// between its link endpoints at the token's progress. ok is false when the
// link index or an endpoint is gone.
func (s *FlowSystem) Position(links []components.Link, token components.FlowToken) (render.Point, bool) {
	if token.Link < 0 || token.Link >= len(links) {
		return render.Point{}, false
	}
	link := links[token.Link]
	a, okA := ecs.GetComponent[*components.PositionComponent](s.em, link.A)
	b, okB := ecs.GetComponent[*components.PositionComponent](s.em, link.B)
	if !okA || !okB {
		return render.Point{}, false
	}
	return render.Point{
		X: a.X + (b.X-a.X)*token.Progress,
		Y: a.Y + (b.Y-a.Y)*token.Progress,
	}, true
}
