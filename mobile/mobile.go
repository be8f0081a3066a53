//go:build mobile

// Package mobile is the ebitenmobile binding of the background.
//
// Build with:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg io.github.techwhizgenius.bg -o build/android/bg.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Background.xcframework ./mobile
//
// The binding carries no embedded files; the scene runs on the built-in
// default configuration, which matches data/background.yaml.
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/app"
)

func init() {
	bg, err := app.NewApp(app.Config{
		Verbose: true,
		Storage: app.OpenStorage(),
	})
	if err != nil {
		log.Fatalf("[Mobile] %v", err)
	}

	ebiten.SetScreenClearedEveryFrame(false)
	mobile.SetGame(bg)
}

// Dummy is exported so that ebitenmobile binds the package.
func Dummy() {}
