package systems

import (
	"math"
	"math/rand/v2"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

// ClusterSystem applies the stochastic flocking nudge between entities that
// share a cluster tag, then caps every entity's speed.
type ClusterSystem struct {
	em  *ecs.EntityManager
	cfg config.ClusterConfig
	rng *rand.Rand
}

// NewClusterSystem creates a cluster system drawing from rng.
func NewClusterSystem(em *ecs.EntityManager, cfg config.ClusterConfig, rng *rand.Rand) *ClusterSystem {
	return &ClusterSystem{em: em, cfg: cfg, rng: rng}
}

// Update runs one flocking pass.
//
// Each entity is nudged with probability cfg.Chance: towards same-tag
// neighbours in (InnerRadius, OuterRadius], away from those closer than
// InnerRadius. Coincident neighbours are ignored. The speed cap applies
// every call, nudged or not.
func (s *ClusterSystem) Update() {
	ids := ecs.GetEntitiesWith3[*components.PositionComponent, *components.VelocityComponent, *components.ClusterComponent](s.em)

	for _, id := range ids {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		if s.rng.Float64() < s.cfg.Chance {
			s.nudge(id, ids, vel)
		}

		clampSpeed(vel, s.cfg.MaxSpeed)
	}
}

func (s *ClusterSystem) nudge(id ecs.EntityID, ids []ecs.EntityID, vel *components.VelocityComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
	tag, _ := ecs.GetComponent[*components.ClusterComponent](s.em, id)

	for _, other := range ids {
		if other == id {
			continue
		}
		otherTag, _ := ecs.GetComponent[*components.ClusterComponent](s.em, other)
		if otherTag.Tag != tag.Tag {
			continue
		}
		otherPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, other)

		dx := otherPos.X - pos.X
		dy := otherPos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		switch {
		case dist == 0:
			continue
		case dist < s.cfg.InnerRadius:
			vel.VX -= dx / dist * s.cfg.Repulsion
			vel.VY -= dy / dist * s.cfg.Repulsion
		case dist <= s.cfg.OuterRadius:
			vel.VX += dx / dist * s.cfg.Attraction
			vel.VY += dy / dist * s.cfg.Attraction
		}
	}
}

// clampSpeed rescales the velocity so its magnitude does not exceed limit.
func clampSpeed(vel *components.VelocityComponent, limit float64) {
	speed := math.Hypot(vel.VX, vel.VY)
	if speed > limit {
		vel.VX = vel.VX / speed * limit
		vel.VY = vel.VY / speed * limit
	}
}
