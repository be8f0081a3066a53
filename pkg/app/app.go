// Package app wraps the background scene into an ebiten.Game.
//
// The same App runs in a desktop window and, built for GOOS=js, on the
// portfolio page canvas. main.go only parses flags and calls NewApp.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/embedded"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/game"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/scenes"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// Config holds the start-up options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath overrides the embedded data/background.yaml with a file on disk.
	ConfigPath string
	// Theme forces the start theme ("light" or "dark") without saving it.
	// Empty uses the saved theme.
	Theme string
	// Seed fixes the random source; 0 picks a random seed.
	Seed uint64
	// Storage persists the theme; nil keeps it in memory.
	Storage *gdata.Manager
}

// Input is the part of Ebitengine input the app reads.
type Input interface {
	PointerPosition() (int, int)
	PointerReleased() bool
	IsAnyKeyJustPressed(keys ...ebiten.Key) bool
	IsFocused() bool
}

type ebitenInput struct{}

func (ebitenInput) PointerPosition() (int, int) { return utils.GetPointerPosition() }
func (ebitenInput) PointerReleased() bool {
	return utils.IsTouchJustReleased() || !utils.HasActivePointer()
}
func (ebitenInput) IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	return utils.IsAnyKeyJustPressed(keys...)
}
func (ebitenInput) IsFocused() bool { return ebiten.IsFocused() }

// Key bindings.
var (
	themeKeys      = []ebiten.Key{ebiten.KeyT}
	fullscreenKeys = []ebiten.Key{ebiten.KeyF11}
	quitKeys       = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// App implements ebiten.Game around a single BackgroundScene.
type App struct {
	sceneManager *game.SceneManager
	background   *scenes.BackgroundScene
	themes       *game.ThemeManager
	input        Input

	width, height int
	quitting      bool
	verbose       bool

	toggleFullscreen func()
}

// NewApp loads the configuration and the saved theme and creates the
// background scene. The scene mounts on the first Layout with a non-empty
// window.
//
// Call embedded.Init() before NewApp unless cfg.ConfigPath is set.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	bgConfig := loadBackgroundConfig(cfg.ConfigPath)

	themes := game.NewThemeManager(cfg.Storage)
	if cfg.Theme != "" {
		theme, err := game.ParseTheme(cfg.Theme)
		if err != nil {
			return nil, fmt.Errorf("invalid -theme: %w", err)
		}
		themes.SetTheme(theme)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("[App] Seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	background, err := scenes.NewBackgroundScene(bgConfig, themes, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create background: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(background)

	return &App{
		sceneManager:     sceneManager,
		background:       background,
		themes:           themes,
		input:            ebitenInput{},
		verbose:          cfg.Verbose,
		toggleFullscreen: func() { ebiten.SetFullscreen(!ebiten.IsFullscreen()) },
	}, nil
}

// loadBackgroundConfig picks the first usable configuration: the override
// file, the embedded file, then the built-in defaults.
func loadBackgroundConfig(path string) *config.BackgroundConfig {
	if path != "" {
		cfg, err := config.LoadBackgroundConfig(path)
		if err == nil {
			log.Printf("[Config] Loaded %s", path)
			return cfg
		}
		log.Printf("[Config] Warning: %v (falling back to embedded config)", err)
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] No embedded data, using built-in defaults")
		return config.DefaultBackgroundConfig()
	}

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err == nil {
		cfg, perr := config.ParseBackgroundConfig(data)
		if perr == nil {
			return cfg
		}
		err = perr
	}
	log.Printf("[Config] Warning: embedded config unusable: %v (using defaults)", err)
	return config.DefaultBackgroundConfig()
}

// Update runs one tick. It returns ebiten.Termination once the user quits.
func (a *App) Update() error {
	if a.quitting {
		return ebiten.Termination
	}

	if a.input.IsAnyKeyJustPressed(quitKeys...) {
		a.Quit()
		return ebiten.Termination
	}

	if a.input.IsAnyKeyJustPressed(themeKeys...) {
		theme, err := a.themes.Toggle()
		if err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		log.Printf("[App] Theme: %s", theme)
	}

	if a.input.IsAnyKeyJustPressed(fullscreenKeys...) && a.toggleFullscreen != nil {
		a.toggleFullscreen()
	}

	// hidden or unfocused windows keep their last frame
	a.background.SetPaused(!a.input.IsFocused())

	x, y := a.input.PointerPosition()
	if a.input.PointerReleased() || !utils.InBounds(x, y, a.width, a.height) {
		a.background.ClearPointer()
	} else {
		a.background.SetPointer(float64(x), float64(y))
	}

	a.sceneManager.Update(1.0 / 60.0)
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout makes the canvas follow the window size one-to-one and mounts the
// background once the window has a size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.sceneManager.Resize(outsideWidth, outsideHeight)
		log.Printf("[App] Layout %dx%d", outsideWidth, outsideHeight)
	}

	if !a.quitting && a.background.State() == scenes.StateUnmounted && outsideWidth > 0 && outsideHeight > 0 {
		a.background.Mount(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight
}

// Quit unmounts the background; the next Update ends the game loop.
func (a *App) Quit() {
	if a.quitting {
		return
	}
	a.quitting = true
	a.sceneManager.Shutdown()
}

// Background returns the background scene.
func (a *App) Background() *scenes.BackgroundScene {
	return a.background
}

// Themes returns the theme manager.
func (a *App) Themes() *game.ThemeManager {
	return a.themes
}

// IsVerbose reports whether log output is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}

// StorageAppName names the gdata directory (desktop, mobile) or
// localStorage prefix (browser) holding the theme preference.
const StorageAppName = "techwhizgenius_portfolio"

// OpenStorage opens the preference store. A failure is logged and yields nil,
// which keeps the theme in memory only.
func OpenStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	storage, err := gdata.Open(gdata.Config{AppName: StorageAppName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (theme will not be saved)", err)
		return nil
	}
	return storage
}

// IsTermination reports whether err only signals a regular quit.
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
