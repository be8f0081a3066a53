package config

// Window defaults for the desktop build. The browser build follows the
// canvas size instead (see app.App.Layout).
const (
	// WindowWidth is the initial window width in pixels.
	WindowWidth = 1280

	// WindowHeight is the initial window height in pixels.
	WindowHeight = 720

	// WindowTitle is shown in the desktop title bar.
	WindowTitle = "TechWhizGenius - bio-network background"

	// DefaultConfigPath is the embedded background config.
	DefaultConfigPath = "data/background.yaml"
)
