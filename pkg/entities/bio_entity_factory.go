package entities

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/shapes"
)

// NewBioEntity seeds one background entity at a random position of a
// width x height surface.
//
// Parameters:
//   - em: entity manager
//   - cfg: background tunables (kind table, size range, speeds, glyph params)
//   - rng: random source; the same seed yields the same entity
//   - width, height: surface size
//
// Returns:
//   - ecs.EntityID: the new entity
//   - error: if the kind table names an unknown glyph kind
func NewBioEntity(em *ecs.EntityManager, cfg *config.BackgroundConfig, rng *rand.Rand, width, height float64) (ecs.EntityID, error) {
	if len(cfg.KindTable) == 0 {
		return 0, fmt.Errorf("empty glyph kind table")
	}
	kind, err := components.ParseGlyphKind(cfg.KindTable[rng.IntN(len(cfg.KindTable))])
	if err != nil {
		return 0, fmt.Errorf("failed to pick glyph kind: %w", err)
	}

	x := rng.Float64() * width
	y := rng.Float64() * height
	vx := (rng.Float64() - 0.5) * cfg.Entity.InitialSpeed
	vy := (rng.Float64() - 0.5) * cfg.Entity.InitialSpeed
	size := cfg.Entity.MinSize + rng.Float64()*(cfg.Entity.MaxSize-cfg.Entity.MinSize)
	angle := rng.Float64() * 2 * math.Pi
	spin := (rng.Float64() - 0.5) * cfg.Entity.RotationSpeed
	tag := rng.IntN(cfg.Entity.Clusters)

	glyph := &components.GlyphComponent{Kind: kind, Size: size}
	switch kind {
	case components.GlyphHelix:
		glyph.Helix = components.HelixState{
			Segments: cfg.Glyphs.HelixSegments,
			Width:    cfg.Glyphs.HelixWidth,
			Twist:    rng.Float64() * 2 * math.Pi,
		}
	case components.GlyphRing:
		glyph.Ring = components.RingState{Atoms: RingAtoms(size, cfg.Glyphs.RingAtoms)}
	case components.GlyphNetwork:
		glyph.Network = components.NetworkState{Layers: shapes.DefaultNetworkLayers(size)}
	case components.GlyphWave:
		glyph.Wave = components.WaveState{
			Phase: rng.Float64() * 2 * math.Pi,
			Speed: cfg.Glyphs.WaveBeatSpeed,
		}
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.RotationComponent{Angle: angle, Speed: spin})
	ecs.AddComponent(em, id, glyph)
	ecs.AddComponent(em, id, &components.ClusterComponent{Tag: tag})
	ecs.AddComponent(em, id, &components.HighlightComponent{})

	return id, nil
}

// SeedBioEntities creates cfg.EntityCount entities and returns their IDs in
// creation order.
func SeedBioEntities(em *ecs.EntityManager, cfg *config.BackgroundConfig, rng *rand.Rand, width, height float64) ([]ecs.EntityID, error) {
	ids := make([]ecs.EntityID, 0, cfg.EntityCount)
	for i := 0; i < cfg.EntityCount; i++ {
		id, err := NewBioEntity(em, cfg, rng, width, height)
		if err != nil {
			return ids, fmt.Errorf("entity %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RingAtoms places n atoms evenly on a circle of radius 2*size.
func RingAtoms(size float64, n int) []components.Point {
	atoms := make([]components.Point, n)
	for i := range atoms {
		angle := float64(i) / float64(n) * 2 * math.Pi
		atoms[i] = components.Point{
			X: math.Cos(angle) * size * 2,
			Y: math.Sin(angle) * size * 2,
		}
	}
	return atoms
}
