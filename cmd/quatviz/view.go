package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	quatviz "github.com/tandukion/quaternion-visualization"
	"github.com/urfave/cli"
)

// View opens the ebiten window.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Quaternion visualization")
	return ebiten.RunGame(quatviz.NewGame(cfg, newEngine(cfg)))
}
