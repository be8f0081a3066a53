package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/app"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	verbose := flag.Bool("verbose", envBool("BG_VERBOSE"), "enable log output")
	configPath := flag.String("config", os.Getenv("BG_CONFIG"), "background config file overriding the embedded one")
	theme := flag.String("theme", os.Getenv("BG_THEME"), "start theme: light or dark (default: saved theme)")
	seed := flag.Uint64("seed", envUint("BG_SEED"), "random seed, 0 for a random one")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Theme:      *theme,
		Seed:       *seed,
		Storage:    app.OpenStorage(),
	})
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// the trail effect fades the previous frame instead of clearing it
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !app.IsTermination(err) {
		log.Fatalf("[Main] %v", err)
	}
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envUint(key string) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
