package main

import (
	"github.com/tandukion/quaternion-visualization/log"
	"github.com/urfave/cli"
)

var logger = log.New("quatviz")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
