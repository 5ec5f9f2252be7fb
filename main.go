package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/senk-showcase/internal/ambience"
	"github.com/iburimskiy/senk-showcase/internal/config"
	"github.com/iburimskiy/senk-showcase/internal/content"
	"github.com/iburimskiy/senk-showcase/internal/game"
	"github.com/iburimskiy/senk-showcase/internal/logger"
	"github.com/iburimskiy/senk-showcase/internal/prefs"
)

func main() {
	manifest := flag.String("manifest", "", "page manifest (TOML); the built-in page is shown when empty")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	reduced := flag.Bool("reduced-motion", false, "snap instantly and keep the title static")
	touch := flag.Bool("touch", false, "behave like a device without hover")
	withSound := flag.Bool("ambience", false, "play a rain or snow soundscape")
	volume := flag.Float64("ambience-volume", -2, "soundscape volume in base-2 steps")
	flag.Parse()

	lvl, err := logger.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.CurrentLevel = lvl

	page := content.Default()
	if *manifest != "" {
		if page, err = content.Load(*manifest); err != nil {
			logger.Error("%v", err)
			os.Exit(1)
		}
	}

	opts := game.Options{
		Page:          page,
		Prefs:         prefs.Open(),
		ReducedMotion: *reduced,
		HoverCapable:  !*touch,
	}
	if *withSound {
		player := ambience.New(*volume)
		if err := player.Start(); err != nil {
			logger.Warn("ambience disabled: %v", err)
		} else {
			defer player.Close()
			opts.Ambience = player
		}
	}

	g, err := game.New(opts)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
