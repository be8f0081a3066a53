package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// Only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates a manager with no active scene; use SwitchTo to
// set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene. The previous scene is unmounted if it
// supports it.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		unmount(sm.currentScene)
	}
	sm.currentScene = scene
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the active scene, if any.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the active scene, if any.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Resize forwards the outside size to the active scene when it is Resizable.
func (sm *SceneManager) Resize(width, height int) {
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Shutdown unmounts the active scene and leaves the manager empty.
func (sm *SceneManager) Shutdown() {
	if sm.currentScene == nil {
		return
	}
	unmount(sm.currentScene)
	sm.currentScene = nil
	log.Printf("[SceneManager] Shut down")
}

func unmount(scene Scene) {
	if u, ok := scene.(Unmountable); ok {
		u.Unmount()
	}
}
