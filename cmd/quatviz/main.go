package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "quatviz"
	app.Usage = "edit a unit quaternion one component at a time and watch the rotation"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}

	stateFlags := []cli.Flag{
		cli.Float64Flag{
			Name:  "w",
			Value: 1,
			Usage: "initial scalar component",
		},
		cli.StringFlag{
			Name:  "axis",
			Value: "1,0,0",
			Usage: "initial rotation axis as x,y,z",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "open the 3D viewer window",
			Description: `
Show the rotated arrow, the rotation axis and the world axes over a grid, with
a slider and a text box for each quaternion component. Drag in the view to
orbit the camera and use the wheel to zoom.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "window height",
				},
				cli.StringFlag{
					Name:  "background",
					Value: "#000000",
					Usage: "background colour as #rrggbb",
				},
			}, stateFlags...),
			Action: View,
		},
		{
			Name:  "tui",
			Usage: "edit the quaternion in the terminal",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "log-file",
					Usage: "write logs to this file instead of discarding them",
				},
			}, stateFlags...),
			Action: Terminal,
		},
		{
			Name:  "apply",
			Usage: "apply a sequence of edits and print each resulting state",
			Description: `
Each argument is component=value, for example:

    quatviz apply w=0.5 x=0.4 y=-0.2

Edits are applied in order starting from the initial state.`,
			ArgsUsage: "component=value ...",
			Flags:     stateFlags,
			Action:    Apply,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
