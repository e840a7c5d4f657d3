package main

import (
	quatviz "github.com/tandukion/quaternion-visualization"
	"github.com/tandukion/quaternion-visualization/orient"
	"github.com/urfave/cli"
)

// loadConfig builds the viewer config from the defaults and whichever
// flags the command defines.
func loadConfig(ctx *cli.Context) (quatviz.Config, error) {
	cfg := quatviz.DefaultConfig()
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("background") {
		cfg.Background = ctx.String("background")
	}
	cfg.InitialW = ctx.Float64("w")
	if s := ctx.String("axis"); s != "" {
		axis, err := quatviz.ParseAxis(s)
		if err != nil {
			return cfg, err
		}
		cfg.InitialAxis = axis
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newEngine(cfg quatviz.Config) *orient.Engine {
	return orient.New(orient.WithInitial(cfg.InitialW, cfg.InitialAxis))
}
