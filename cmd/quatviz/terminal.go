package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/tandukion/quaternion-visualization/log"
	"github.com/tandukion/quaternion-visualization/tui"
	"github.com/urfave/cli"
)

// Terminal runs the tcell front end. Logs would corrupt the screen, so
// they go to --log-file or nowhere.
func Terminal(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if path := ctx.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetSink(f)
	} else {
		log.SetSink(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.New(screen, cfg, newEngine(cfg)).Run(runCtx)
	if err == context.Canceled {
		return nil
	}
	return err
}
