package scenes

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/entities"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/game"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneState is the lifecycle state of the background.
type SceneState int

const (
	// StateUnmounted is both the initial and the terminal state: no
	// entities, nothing is stepped or drawn.
	StateUnmounted SceneState = iota
	// StateRunning steps and draws every frame.
	StateRunning
)

func (s SceneState) String() string {
	if s == StateRunning {
		return "running"
	}
	return "unmounted"
}

// BackgroundScene drives the animated bio-network background.
//
// It owns every piece of mutable animation state (entities, links, flow
// tokens, pointer, surface size) and is only touched from the frame loop,
// so it needs no locking. The theme is read from a ThemeSource once per
// drawn frame and passed down explicitly.
type BackgroundScene struct {
	cfg    *config.BackgroundConfig
	rules  systems.LinkRules
	themes game.ThemeSource
	rng    *rand.Rand

	state         SceneState
	width, height int
	pointer       components.Pointer
	paused        bool

	// ECS
	entityManager   *ecs.EntityManager
	motionSystem    *systems.MotionSystem
	clusterSystem   *systems.ClusterSystem
	proximitySystem *systems.ProximitySystem
	flowSystem      *systems.FlowSystem
	renderSystem    *systems.RenderSystem

	// built once per mount
	links []components.Link
	flows []components.FlowToken
}

// NewBackgroundScene creates an unmounted background.
//
// Parameters:
//   - cfg: validated background tunables
//   - themes: theme read once per drawn frame
//   - rng: the only random source of the animation; a fixed seed replays
//     the same entities, links and clustering
//
// Returns:
//   - *BackgroundScene: the scene, in StateUnmounted
//   - error: if the link rules in cfg are invalid
func NewBackgroundScene(cfg *config.BackgroundConfig, themes game.ThemeSource, rng *rand.Rand) (*BackgroundScene, error) {
	rules, err := systems.NewLinkRules(cfg.Links.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to build link rules: %w", err)
	}

	em := ecs.NewEntityManager()
	flowSystem := systems.NewFlowSystem(em)

	return &BackgroundScene{
		cfg:             cfg,
		rules:           rules,
		themes:          themes,
		rng:             rng,
		entityManager:   em,
		motionSystem:    systems.NewMotionSystem(em, 0, 0),
		clusterSystem:   systems.NewClusterSystem(em, cfg.Cluster, rng),
		proximitySystem: systems.NewProximitySystem(em, cfg.Pointer.Radius),
		flowSystem:      flowSystem,
		renderSystem:    systems.NewRenderSystem(em, flowSystem, cfg),
	}, nil
}

// Mount seeds the entities and builds the link graph on a width x height
// surface, then enters StateRunning.
//
// A missing or empty surface is the only failure: it is logged and the
// scene stays unmounted. Mounting a running scene does nothing.
func (s *BackgroundScene) Mount(width, height int) {
	if s.state == StateRunning {
		return
	}
	if width <= 0 || height <= 0 {
		log.Printf("[BackgroundScene] Surface unavailable (%dx%d), skipping", width, height)
		return
	}

	s.entityManager.Clear()
	s.setSize(width, height)

	if _, err := entities.SeedBioEntities(s.entityManager, s.cfg, s.rng, float64(width), float64(height)); err != nil {
		log.Printf("[BackgroundScene] Failed to seed entities: %v, skipping", err)
		s.entityManager.Clear()
		return
	}
	s.links, s.flows = systems.BuildLinkGraph(s.entityManager, s.rules, s.cfg, s.rng)

	s.state = StateRunning
	log.Printf("[BackgroundScene] Mounted %dx%d: %d entities, %d links, %d flows",
		width, height, s.entityManager.Count(), len(s.links), len(s.flows))
}

// Unmount drops every entity, link and token and returns to
// StateUnmounted. Step and Render are no-ops afterwards.
func (s *BackgroundScene) Unmount() {
	if s.state == StateUnmounted {
		return
	}
	s.entityManager.Clear()
	s.links = nil
	s.flows = nil
	s.pointer = components.Pointer{}
	s.state = StateUnmounted
	log.Printf("[BackgroundScene] Unmounted")
}

// Step advances the animation by one tick: motion, clustering and pointer
// proximity for every entity, then every flow token.
func (s *BackgroundScene) Step() {
	if s.state != StateRunning {
		return
	}
	s.motionSystem.Update()
	s.clusterSystem.Update()
	s.proximitySystem.Update(s.pointer)
	s.flowSystem.Update(s.flows)
}

// Render draws the current state with the palette of theme.
func (s *BackgroundScene) Render(surface render.Surface, theme game.Theme) {
	if s.state != StateRunning || surface == nil {
		return
	}
	s.renderSystem.Draw(surface, s.cfg.Palette(theme.String()), s.links, s.flows)
}

// Frame runs one full animation frame: Step, then Render. Stepping is
// skipped while paused.
func (s *BackgroundScene) Frame(surface render.Surface, theme game.Theme) {
	if !s.paused {
		s.Step()
	}
	s.Render(surface, theme)
}

// Update implements game.Scene. The animation is tick based, so
// deltaTime is ignored.
func (s *BackgroundScene) Update(deltaTime float64) {
	if s.paused {
		return
	}
	s.Step()
}

// Draw implements game.Scene.
func (s *BackgroundScene) Draw(screen *ebiten.Image) {
	if s.state != StateRunning || screen == nil {
		return
	}
	s.Render(render.NewImageSurface(screen), s.themes.Theme())
}

// Resize changes the surface size. Entity positions are kept; entities left
// outside are pulled back by the next Step.
func (s *BackgroundScene) Resize(width, height int) {
	s.setSize(width, height)
}

func (s *BackgroundScene) setSize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.motionSystem.Resize(float64(s.width), float64(s.height))
}

// SetPointer records a pointer position in surface coordinates.
func (s *BackgroundScene) SetPointer(x, y float64) {
	s.pointer = components.PointerAt(x, y)
}

// ClearPointer marks the pointer as absent; the next Step clears every
// highlight.
func (s *BackgroundScene) ClearPointer() {
	s.pointer = components.Pointer{}
}

// SetPaused suspends or resumes stepping. Rendering is unaffected.
func (s *BackgroundScene) SetPaused(paused bool) {
	if paused != s.paused {
		log.Printf("[BackgroundScene] Paused: %v", paused)
	}
	s.paused = paused
}

// Paused reports whether stepping is suspended.
func (s *BackgroundScene) Paused() bool { return s.paused }

// State returns the lifecycle state.
func (s *BackgroundScene) State() SceneState { return s.state }

// Size returns the current surface size.
func (s *BackgroundScene) Size() (int, int) { return s.width, s.height }

// Pointer returns the last recorded pointer.
func (s *BackgroundScene) Pointer() components.Pointer { return s.pointer }

// Links returns the link graph built at mount time.
func (s *BackgroundScene) Links() []components.Link { return s.links }

// Flows returns the flow tokens.
func (s *BackgroundScene) Flows() []components.FlowToken { return s.flows }

// EntityManager exposes the entities, for inspection tools and tests.
func (s *BackgroundScene) EntityManager() *ecs.EntityManager { return s.entityManager }
