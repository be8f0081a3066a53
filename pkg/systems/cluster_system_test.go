package systems

import (
	"math"
	"testing"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

func alwaysCluster() config.ClusterConfig {
	cfg := config.DefaultBackgroundConfig().Cluster
	cfg.Chance = 1
	return cfg
}

func TestClusterSystem_SpeedCap(t *testing.T) {
	em := ecs.NewEntityManager()
	fast := addBioEntity(em, components.GlyphCloud, 100, 100, 3, 4, 6)
	slow := addBioEntity(em, components.GlyphCloud, 700, 500, 0.1, 0, 6)

	// cap applies even when no nudge happens
	cfg := config.DefaultBackgroundConfig().Cluster
	cfg.Chance = 0
	NewClusterSystem(em, cfg, seededRand(1)).Update()

	vel := velocity(em, fast)
	if speed := math.Hypot(vel.VX, vel.VY); math.Abs(speed-0.5) > 1e-9 {
		t.Errorf("speed = %v, want 0.5", speed)
	}
	if math.Abs(vel.VX/vel.VY-0.75) > 1e-9 {
		t.Errorf("direction changed: (%v, %v)", vel.VX, vel.VY)
	}
	if v := velocity(em, slow); v.VX != 0.1 || v.VY != 0 {
		t.Errorf("slow entity changed: (%v, %v)", v.VX, v.VY)
	}
}

func TestClusterSystem_SpeedNeverExceedsCap(t *testing.T) {
	em := ecs.NewEntityManager()
	rng := seededRand(9)
	for i := 0; i < 30; i++ {
		addBioEntity(em, components.GlyphWave, rng.Float64()*300, rng.Float64()*300,
			(rng.Float64()-0.5)*2, (rng.Float64()-0.5)*2, 6)
	}

	sys := NewClusterSystem(em, alwaysCluster(), seededRand(10))
	for tick := 0; tick < 100; tick++ {
		sys.Update()
		for _, id := range ecs.GetEntitiesWith1[*components.VelocityComponent](em) {
			v := velocity(em, id)
			if speed := math.Hypot(v.VX, v.VY); speed > 0.5+1e-12 {
				t.Fatalf("tick %d: entity %d speed %v exceeds 0.5", tick, id, speed)
			}
		}
	}
}

func TestClusterSystem_Forces(t *testing.T) {
	tests := []struct {
		name     string
		otherX   float64
		otherTag int
		wantVX   float64
	}{
		{"attract inside band", 100, 0, 0.002},
		{"attract at outer radius", 200, 0, 0.002},
		{"repel when close", 30, 0, -0.001},
		{"ignore beyond outer radius", 250, 0, 0},
		{"ignore other cluster", 100, 1, 0},
		{"ignore coincident", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := addBioEntity(em, components.GlyphHelix, 300, 300, 0, 0, 6)
			other := addBioEntity(em, components.GlyphHelix, 300+tt.otherX, 300, 0, 0, 6)
			tag, _ := ecs.GetComponent[*components.ClusterComponent](em, other)
			tag.Tag = tt.otherTag

			NewClusterSystem(em, alwaysCluster(), seededRand(2)).Update()

			vel := velocity(em, id)
			if math.Abs(vel.VX-tt.wantVX) > 1e-12 || vel.VY != 0 {
				t.Errorf("velocity = (%v, %v), want (%v, 0)", vel.VX, vel.VY, tt.wantVX)
			}
			if math.IsNaN(vel.VX) {
				t.Error("velocity is NaN")
			}
		})
	}
}
