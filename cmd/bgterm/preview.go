package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/game"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/scenes"
	"github.com/gdamore/tcell/v2"
)

// Preview runs the background inside a terminal.
type Preview struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	scene   *scenes.BackgroundScene
	themes  *game.ThemeManager
	cellW   int
	cellH   int
}

// NewPreview mounts the background on an initialised screen. Each terminal
// cell stands for cellW x cellH canvas pixels.
func NewPreview(screen tcell.Screen, cfg *config.BackgroundConfig, themes *game.ThemeManager, rng *rand.Rand, cellW, cellH int) (*Preview, error) {
	scene, err := scenes.NewBackgroundScene(cfg, themes, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create background: %w", err)
	}

	p := &Preview{
		screen:  screen,
		surface: render.NewTerminalSurface(screen, cellW, cellH),
		scene:   scene,
		themes:  themes,
		cellW:   cellW,
		cellH:   cellH,
	}
	scene.Mount(p.surface.Size())
	return p, nil
}

// handleEvent applies one terminal event. It returns false when the user
// quits.
func (p *Preview) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 't' {
			theme, err := p.themes.Toggle()
			if err != nil {
				log.Printf("[Preview] Warning: %v", err)
			}
			log.Printf("[Preview] Theme: %s", theme)
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		p.scene.SetPointer(float64(col*p.cellW+p.cellW/2), float64(row*p.cellH+p.cellH/2))

	case *tcell.EventFocus:
		p.scene.SetPaused(!ev.Focused)
		if !ev.Focused {
			p.scene.ClearPointer()
		}

	case *tcell.EventResize:
		p.surface.Resize()
		w, h := p.surface.Size()
		p.scene.Resize(w, h)
		// a terminal that started at 0x0 mounts on its first real size
		p.scene.Mount(w, h)
		p.screen.Sync()
	}

	return true
}

// frame steps and draws one frame.
func (p *Preview) frame() {
	p.scene.Frame(p.surface, p.themes.Theme())
	p.surface.Flush()
}

func (p *Preview) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				// screen finalised
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !p.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			p.frame()
		}
	}
}

func (p *Preview) cleanup() {
	p.scene.Unmount()
	p.screen.Fini()
}
