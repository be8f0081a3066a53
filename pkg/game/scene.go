package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one full-screen view driven by the game loop.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable is implemented by scenes that track the outside window size.
type Resizable interface {
	Resize(width, height int)
}

// Unmountable is implemented by scenes that hold resources until the
// program exits. Unmount is called once, when the window closes or the user
// quits; after it the scene must ignore Update and Draw.
type Unmountable interface {
	Unmount()
}
