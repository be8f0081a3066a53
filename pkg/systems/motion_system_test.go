package systems

import (
	"math"
	"testing"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

// TestMotionSystem_LeftEdgeBounce: 800x600 surface, entity at (10, 300)
// moving (-5, 0). One tick flips the horizontal velocity and keeps x >= 0.
func TestMotionSystem_LeftEdgeBounce(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addBioEntity(em, components.GlyphCloud, 10, 300, -5, 0, 6)

	NewMotionSystem(em, 800, 600).Update()

	vel := velocity(em, id)
	if vel.VX != 5 {
		t.Errorf("VX = %v, want 5", vel.VX)
	}
	if pos := position(em, id); pos.X < 0 {
		t.Errorf("X = %v, want >= 0", pos.X)
	}
}

func TestMotionSystem_Integrates(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addBioEntity(em, components.GlyphWave, 400, 300, 0.1, -0.2, 6)
	rot, _ := ecs.GetComponent[*components.RotationComponent](em, id)
	rot.Speed = 0.01

	sys := NewMotionSystem(em, 800, 600)
	for i := 0; i < 10; i++ {
		sys.Update()
	}

	pos := position(em, id)
	if math.Abs(pos.X-401) > 1e-9 || math.Abs(pos.Y-298) > 1e-9 {
		t.Errorf("position = (%v, %v), want (401, 298)", pos.X, pos.Y)
	}
	if math.Abs(rot.Angle-0.1) > 1e-9 {
		t.Errorf("angle = %v, want 0.1", rot.Angle)
	}
	glyph, _ := ecs.GetComponent[*components.GlyphComponent](em, id)
	if math.Abs(glyph.Wave.Phase-0.5) > 1e-9 {
		t.Errorf("wave phase = %v, want 0.5", glyph.Wave.Phase)
	}
}

func TestMotionSystem_EdgesTable(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantVX, wantVY float64
	}{
		{"left", 2, 300, -1, 0, 1, 0},
		{"right", 799, 300, 1, 0, -1, 0},
		{"top", 400, 2, 0, -1, 0, 1},
		{"bottom", 400, 599, 0, 1, 0, -1},
		{"corner", 1, 1, -1, -1, 1, 1},
		{"interior", 400, 300, 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := addBioEntity(em, components.GlyphRing, tt.x, tt.y, tt.vx, tt.vy, 5)
			NewMotionSystem(em, 800, 600).Update()

			vel := velocity(em, id)
			if vel.VX != tt.wantVX || vel.VY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vel.VX, vel.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

// TestMotionSystem_StaysInBounds drives random entities for many ticks on
// surfaces down to 0x0 and checks every position after every tick.
func TestMotionSystem_StaysInBounds(t *testing.T) {
	sizes := [][2]float64{{800, 600}, {40, 30}, {10, 5}, {0, 0}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		rng := seededRand(uint64(w*1000 + h))
		em := ecs.NewEntityManager()
		for i := 0; i < 40; i++ {
			addBioEntity(em, components.AllGlyphKinds[i%len(components.AllGlyphKinds)],
				rng.Float64()*w, rng.Float64()*h,
				(rng.Float64()-0.5)*40, (rng.Float64()-0.5)*40,
				5+rng.Float64()*3)
		}

		sys := NewMotionSystem(em, w, h)
		for tick := 0; tick < 500; tick++ {
			sys.Update()
			for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](em) {
				pos := position(em, id)
				if pos.X < 0 || pos.X > w || pos.Y < 0 || pos.Y > h {
					t.Fatalf("%vx%v tick %d: entity %d at (%v, %v)", w, h, tick, id, pos.X, pos.Y)
				}
			}
		}
	}
}

func TestMotionSystem_ResizePullsBackIn(t *testing.T) {
	em := ecs.NewEntityManager()
	id := addBioEntity(em, components.GlyphHelix, 700, 500, 0, 0, 6)

	sys := NewMotionSystem(em, 800, 600)
	sys.Resize(400, 300)

	// resizing alone leaves positions untouched
	if pos := position(em, id); pos.X != 700 || pos.Y != 500 {
		t.Fatalf("Resize moved the entity to (%v, %v)", pos.X, pos.Y)
	}

	sys.Update()
	pos := position(em, id)
	if pos.X != 394 || pos.Y != 294 {
		t.Errorf("position after tick = (%v, %v), want (394, 294)", pos.X, pos.Y)
	}
}
