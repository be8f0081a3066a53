package systems

import (
	"math/rand/v2"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/entities"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/shapes"
)

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// addBioEntity creates an entity with every component the systems read.
func addBioEntity(em *ecs.EntityManager, kind components.GlyphKind, x, y, vx, vy, size float64) ecs.EntityID {
	glyph := &components.GlyphComponent{Kind: kind, Size: size}
	switch kind {
	case components.GlyphHelix:
		glyph.Helix = components.HelixState{Segments: 6, Width: 16}
	case components.GlyphRing:
		glyph.Ring = components.RingState{Atoms: entities.RingAtoms(size, 5)}
	case components.GlyphNetwork:
		glyph.Network = components.NetworkState{Layers: shapes.DefaultNetworkLayers(size)}
	case components.GlyphWave:
		glyph.Wave = components.WaveState{Speed: 0.05}
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.RotationComponent{})
	em.AddComponent(id, glyph)
	em.AddComponent(id, &components.ClusterComponent{})
	em.AddComponent(id, &components.HighlightComponent{})
	return id
}

func position(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

func velocity(em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	return vel
}
