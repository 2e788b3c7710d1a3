package main

import (
	"flag"
	"os"

	"github.com/39bytes/cloth-sim/internal/commons/logger_config"
	"github.com/39bytes/cloth-sim/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenePath := flag.String("scene", "", "path to a yaml scene config (optional)")
	flag.Parse()

	cfg, err := game.LoadConfig(*scenePath)
	if err != nil {
		logger_config.Errorf("load scene: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle("Cloth")

	g := game.New(cfg)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		logger_config.Errorf("run game: %v", err)
	}
}
