package main

import (
	"log"

	"serfpopup/internal/config"
	"serfpopup/internal/game"
	"serfpopup/internal/popup"
	"serfpopup/internal/sim"
	"serfpopup/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	popup.SetDebugLogging(cfg.Debug.LogActions)

	// Audio stays silent without a context
	var ctx *audio.Context
	if cfg.Audio.Enabled {
		ctx = audio.NewContext(cfg.Audio.SampleRate)
	}
	snd := sound.NewManager(ctx, sound.Options{
		Music:      cfg.Audio.Music,
		Effects:    cfg.Audio.Effects,
		Volume:     cfg.Audio.Volume,
		VolumeStep: cfg.Audio.VolumeStep,
	})

	world := sim.NewDemoGame(sim.DemoConfig{
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
		Seed:        cfg.World.Seed,
		Players:     cfg.World.Players,
		WarmupTicks: cfg.World.WarmupTicks,
	})
	world.SetDemoMode(cfg.World.DemoMode)

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetWindowWidth(), cfg.GetWindowHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Display.Fullscreen)

	g := game.New(cfg, world, snd)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
