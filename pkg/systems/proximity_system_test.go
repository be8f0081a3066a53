package systems

import (
	"testing"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

func highlighted(em *ecs.EntityManager, id ecs.EntityID) bool {
	hl, _ := ecs.GetComponent[*components.HighlightComponent](em, id)
	return hl.Active
}

func TestProximitySystem_PointerOnEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	near := addBioEntity(em, components.GlyphRing, 200, 200, 0, 0, 6)
	far := addBioEntity(em, components.GlyphRing, 600, 400, 0, 0, 6)
	sys := NewProximitySystem(em, 80)

	sys.Update(components.PointerAt(200, 200))
	if !highlighted(em, near) {
		t.Error("entity under the pointer should be active")
	}
	if highlighted(em, far) {
		t.Error("distant entity should not be active")
	}

	sys.Update(components.Pointer{})
	if highlighted(em, near) || highlighted(em, far) {
		t.Error("absent pointer must clear every flag")
	}
}

func TestProximitySystem_Radius(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want bool
	}{
		{"inside", 79.9, true},
		{"on the radius", 80, false},
		{"outside", 120, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := addBioEntity(em, components.GlyphCloud, 300, 300, 0, 0, 6)
			NewProximitySystem(em, 80).Update(components.PointerAt(300+tt.dx, 300))
			if got := highlighted(em, id); got != tt.want {
				t.Errorf("active = %v, want %v", got, tt.want)
			}
		})
	}
}
