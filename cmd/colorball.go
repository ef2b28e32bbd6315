package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/colorball/core/engine"
	"github.com/ingyamilmolinar/colorball/core/model"
	"github.com/ingyamilmolinar/colorball/internal/audio"
	"github.com/ingyamilmolinar/colorball/internal/config"
	game_log "github.com/ingyamilmolinar/colorball/internal/log"
	"github.com/ingyamilmolinar/colorball/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		game_log.New(os.Stderr, game_log.LevelError).Fatalf("[MAIN] config: %v", err)
	}
	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))

	audio.SetEnabled(cfg.Sound)
	audio.OnError(func(err error) {
		logger.Warnf("[MAIN] audio disabled: %v", err)
	})

	var rng model.RandomSource
	if cfg.Seed != 0 {
		logger.Infof("[MAIN] Using fixed seed %d", cfg.Seed)
		rng = model.NewSeededRNG(cfg.Seed)
	}
	g := ui.New(rng, logger)

	ebiten.SetWindowSize(int(engine.ScreenWidth*cfg.Scale), int(engine.ScreenHeight*cfg.Scale))
	ebiten.SetWindowTitle(ui.WindowTitle)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("[MAIN] game exited: %v", err)
	}
}
