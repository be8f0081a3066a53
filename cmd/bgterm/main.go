// Command bgterm previews the animated background in a terminal.
//
// Usage:
//
//	go run ./cmd/bgterm [-config data/background.yaml] [-seed 42] [-verbose]
//
// Keys: t toggles the theme, q or Esc quits. Mouse movement highlights
// nearby glyphs when the terminal reports mouse motion.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/game"
	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/quasilyte/gdata/v2"
)

var (
	configPath = flag.String("config", config.DefaultConfigPath, "background config file")
	seed       = flag.Uint64("seed", 0, "random seed, 0 for a random one")
	themeName  = flag.String("theme", "", "start theme: light or dark (default: saved theme)")
	cellWidth  = flag.Int("cell-width", 8, "canvas pixels per terminal column")
	cellHeight = flag.Int("cell-height", 16, "canvas pixels per terminal row")
	fps        = flag.Int("fps", 30, "frames per second")
	verbose    = flag.Bool("verbose", false, "log to bgterm.log")
)

func main() {
	flag.Parse()

	// the terminal belongs to the preview, logs go to a file
	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.Create("bgterm.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "bgterm: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.LoadBackgroundConfig(*configPath)
	if err != nil {
		log.Printf("[Main] Warning: %v (using defaults)", err)
		cfg = config.DefaultBackgroundConfig()
	}

	storage, err := gdata.Open(gdata.Config{AppName: "techwhizgenius_portfolio"})
	if err != nil {
		log.Printf("[Main] Warning: storage unavailable: %v", err)
		storage = nil
	}
	themes := game.NewThemeManager(storage)
	if *themeName != "" {
		theme, err := game.ParseTheme(*themeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bgterm: %v\n", err)
			os.Exit(2)
		}
		themes.SetTheme(theme)
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	log.Printf("[Main] Seed: %d", s)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgterm: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "bgterm: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	preview, err := NewPreview(screen, cfg, themes, rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)), *cellWidth, *cellHeight)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "bgterm: %v\n", err)
		os.Exit(1)
	}
	defer preview.cleanup()

	preview.run(time.Second / time.Duration(max(*fps, 1)))
}
