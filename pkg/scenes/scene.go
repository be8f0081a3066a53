package scenes

import (
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/game"
)

// Scene is an alias for game.Scene.
type Scene = game.Scene

var (
	_ Scene            = (*BackgroundScene)(nil)
	_ game.Resizable   = (*BackgroundScene)(nil)
	_ game.Unmountable = (*BackgroundScene)(nil)
)
