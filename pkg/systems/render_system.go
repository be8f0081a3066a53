package systems

import (
	"math"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/shapes"
)

// RenderSystem paints one frame of the background onto a surface.
type RenderSystem struct {
	em    *ecs.EntityManager
	flows *FlowSystem
	cfg   *config.BackgroundConfig
}

// NewRenderSystem creates a render system.
func NewRenderSystem(em *ecs.EntityManager, flows *FlowSystem, cfg *config.BackgroundConfig) *RenderSystem {
	return &RenderSystem{em: em, flows: flows, cfg: cfg}
}

// Draw paints a frame in layer order: the translucent trail overlay (which
// fades the previous frame), links, flow tokens, then entities on top.
func (s *RenderSystem) Draw(surface render.Surface, palette config.Palette, links []components.Link, flows []components.FlowToken) {
	surface.Fill(palette.Trail)
	s.drawLinks(surface, palette, links)
	s.drawFlows(surface, palette, links, flows)
	s.drawEntities(surface, palette)
}

// drawLinks fades each link linearly with the distance between its
// endpoints, reaching zero at MaxDistance.
func (s *RenderSystem) drawLinks(surface render.Surface, palette config.Palette, links []components.Link) {
	for _, link := range links {
		a, okA := ecs.GetComponent[*components.PositionComponent](s.em, link.A)
		b, okB := ecs.GetComponent[*components.PositionComponent](s.em, link.B)
		if !okA || !okB {
			continue
		}
		alpha := LinkAlpha(math.Hypot(b.X-a.X, b.Y-a.Y), s.cfg.Links.MaxDistance, s.cfg.Links.Alpha)
		if alpha == 0 {
			continue
		}
		surface.StrokeLine(a.X, a.Y, b.X, b.Y, s.cfg.Links.Width, config.WithAlpha(palette.Base, alpha))
	}
}

func (s *RenderSystem) drawFlows(surface render.Surface, palette config.Palette, links []components.Link, flows []components.FlowToken) {
	for _, token := range flows {
		p, ok := s.flows.Position(links, token)
		if !ok {
			continue
		}
		surface.FillCircle(p.X, p.Y, s.cfg.Flow.Radius, palette.Flow)
	}
}

func (s *RenderSystem) drawEntities(surface render.Surface, palette config.Palette) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.GlyphComponent](s.em)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		glyph, _ := ecs.GetComponent[*components.GlyphComponent](s.em, id)

		pose := render.Pose{X: pos.X, Y: pos.Y}
		if rot, ok := ecs.GetComponent[*components.RotationComponent](s.em, id); ok {
			pose.Rotation = rot.Angle
		}

		clr := palette.Base
		if hl, ok := ecs.GetComponent[*components.HighlightComponent](s.em, id); ok && hl.Active {
			clr = palette.Active
		}

		shapes.Draw(surface, glyph, pose, clr)
	}
}

// LinkAlpha is the opacity of a link of length dist: peak at zero distance,
// falling linearly to zero at maxDist.
func LinkAlpha(dist, maxDist, peak float64) float64 {
	return math.Max(0, 1-dist/maxDist) * peak
}
