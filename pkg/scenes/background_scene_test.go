package scenes

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/game"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

func newTestScene(t *testing.T, seed uint64) *BackgroundScene {
	t.Helper()
	s, err := NewBackgroundScene(config.DefaultBackgroundConfig(), game.StaticTheme(game.ThemeDark),
		rand.New(rand.NewPCG(seed, seed+1)))
	if err != nil {
		t.Fatalf("NewBackgroundScene: %v", err)
	}
	return s
}

func TestNewBackgroundSceneBadRules(t *testing.T) {
	cfg := config.DefaultBackgroundConfig()
	cfg.Links.Rules = []config.LinkRuleConfig{{A: "wave", B: "comet", Chance: 1}}
	if _, err := NewBackgroundScene(cfg, game.StaticTheme(game.ThemeLight), rand.New(rand.NewPCG(1, 2))); err == nil {
		t.Error("expected error for unknown glyph kind in rules")
	}
}

func TestBackgroundSceneMount(t *testing.T) {
	s := newTestScene(t, 1)
	if s.State() != StateUnmounted {
		t.Fatalf("initial state = %s", s.State())
	}

	s.Mount(800, 600)
	if s.State() != StateRunning {
		t.Fatalf("state after Mount = %s, want running", s.State())
	}
	if n := s.EntityManager().Count(); n != 30 {
		t.Errorf("entities = %d, want 30", n)
	}
	if len(s.Links()) == 0 {
		t.Error("expected a link graph")
	}

	// mounting twice keeps the first graph
	links := slices.Clone(s.Links())
	s.Mount(800, 600)
	if !slices.Equal(links, s.Links()) {
		t.Error("second Mount must not rebuild the graph")
	}
}

func TestBackgroundSceneMountUnavailableSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero", 0, 0},
		{"zero width", 0, 600},
		{"negative", -1, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t, 1)
			s.Mount(tt.width, tt.height)
			if s.State() != StateUnmounted {
				t.Errorf("state = %s, want unmounted", s.State())
			}
			if s.EntityManager().Count() != 0 {
				t.Error("no entity may be seeded without a surface")
			}

			// Step and Render stay no-ops
			s.Step()
			rec := render.NewRecorder(0, 0)
			s.Render(rec, game.ThemeDark)
			if len(rec.Ops) != 0 {
				t.Errorf("unmounted scene drew %d ops", len(rec.Ops))
			}
		})
	}
}

func TestBackgroundSceneSeedReplays(t *testing.T) {
	run := func() []components.PositionComponent {
		s := newTestScene(t, 77)
		s.Mount(1280, 720)
		s.SetPointer(640, 360)
		for i := 0; i < 120; i++ {
			s.Step()
		}
		em := s.EntityManager()
		var out []components.PositionComponent
		for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](em) {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			out = append(out, *pos)
		}
		return out
	}

	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Error("same seed must replay the same animation")
	}
}

func TestBackgroundSceneFrameOrder(t *testing.T) {
	s := newTestScene(t, 3)
	s.Mount(800, 600)

	rec := render.NewRecorder(800, 600)
	s.Frame(rec, game.ThemeDark)

	dark := config.DefaultBackgroundConfig().Palette("dark")
	if rec.Ops[0].Kind != render.OpFill || rec.Ops[0].Color != dark.Trail {
		t.Errorf("first op = %+v, want dark trail fill", rec.Ops[0])
	}
	if rec.Count(render.OpFill) != 1 {
		t.Errorf("fills per frame = %d, want 1", rec.Count(render.OpFill))
	}

	rec.Reset()
	s.Render(rec, game.ThemeLight)
	light := config.DefaultBackgroundConfig().Palette("light")
	if rec.Ops[0].Color != light.Trail {
		t.Errorf("light frame trail = %+v, want %+v", rec.Ops[0].Color, light.Trail)
	}
}

func TestBackgroundScenePointer(t *testing.T) {
	s := newTestScene(t, 5)
	s.Mount(800, 600)
	em := s.EntityManager()
	ids := ecs.GetEntitiesWith1[*components.HighlightComponent](em)
	target := ids[0]

	// keep the target still so the pointer stays on it after the tick
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, target)
	vel.VX, vel.VY = 0, 0
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, target)

	s.SetPointer(pos.X, pos.Y)
	s.Step()
	hl, _ := ecs.GetComponent[*components.HighlightComponent](em, target)
	if !hl.Active {
		t.Error("entity under the pointer should be active")
	}

	s.ClearPointer()
	s.Step()
	for _, id := range ids {
		hl, _ := ecs.GetComponent[*components.HighlightComponent](em, id)
		if hl.Active {
			t.Fatalf("entity %d still active after the pointer left", id)
		}
	}
}

func TestBackgroundScenePause(t *testing.T) {
	s := newTestScene(t, 9)
	s.Mount(800, 600)
	before := slices.Clone(s.Flows())

	s.SetPaused(true)
	s.Update(1.0 / 60)
	rec := render.NewRecorder(800, 600)
	s.Frame(rec, game.ThemeDark)

	if !slices.Equal(before, s.Flows()) {
		t.Error("paused scene must not advance")
	}
	if len(rec.Ops) == 0 {
		t.Error("paused scene must still render")
	}

	s.SetPaused(false)
	s.Update(1.0 / 60)
	if len(before) > 0 && slices.Equal(before, s.Flows()) {
		t.Error("resumed scene must advance flows")
	}
}

func TestBackgroundSceneResize(t *testing.T) {
	s := newTestScene(t, 11)
	s.Mount(800, 600)
	em := s.EntityManager()

	snapshot := map[ecs.EntityID]components.PositionComponent{}
	for _, id := range ecs.GetEntitiesWith1[*components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snapshot[id] = *pos
	}

	s.Resize(200, 150)
	if w, h := s.Size(); w != 200 || h != 150 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	for id, want := range snapshot {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if *pos != want {
			t.Fatalf("Resize moved entity %d", id)
		}
	}

	s.Step()
	for id := range snapshot {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X < 0 || pos.X > 200 || pos.Y < 0 || pos.Y > 150 {
			t.Errorf("entity %d at (%v, %v) outside the new bounds after one tick", id, pos.X, pos.Y)
		}
	}
}

func TestBackgroundSceneUnmount(t *testing.T) {
	s := newTestScene(t, 13)
	s.Mount(800, 600)
	s.SetPointer(10, 10)

	s.Unmount()
	if s.State() != StateUnmounted {
		t.Fatalf("state = %s", s.State())
	}
	if s.EntityManager().Count() != 0 || s.Links() != nil || s.Flows() != nil {
		t.Error("Unmount must drop every entity, link and token")
	}
	if s.Pointer().Present {
		t.Error("Unmount must release the pointer")
	}

	rec := render.NewRecorder(800, 600)
	s.Frame(rec, game.ThemeDark)
	s.Draw(nil)
	if len(rec.Ops) != 0 {
		t.Error("no frame may be drawn after Unmount")
	}

	s.Unmount()
}
