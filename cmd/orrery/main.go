// Command orrery renders the sample solar system with the software
// rasterizer, either to PNG frames or into an interactive window.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/gogpu/orrery"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	presetFlag := cli.StringFlag{
		Name:  "preset, p",
		Usage: "YAML render preset; built-in defaults when empty",
	}
	sizeFlags := []cli.Flag{
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width, overrides the preset",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height, overrides the preset",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "worker goroutines for sky and post-processing, 0 for all CPUs",
		},
	}

	app := cli.NewApp()
	app.Name = "orrery"
	app.Usage = "render an animated solar system on the CPU"
	app.Version = orrery.Version
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
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render an animation to numbered PNG files",
			Description: `
Render the sample system from an orbiting camera. Frames are written as
frame-00000.png, frame-00001.png, ... into the output directory while the
next frame is being drawn.`,
			Flags: append([]cli.Flag{
				presetFlag,
				cli.StringFlag{
					Name:  "out, o",
					Value: "frames",
					Usage: "output directory",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Usage: "number of frames, overrides the preset",
				},
				cli.Float64Flag{
					Name:  "start",
					Usage: "simulation time of the first frame in seconds",
				},
			}, sizeFlags...),
			Action: renderFrames,
		},
		{
			Name:  "view",
			Usage: "open an interactive window",
			Description: `
Keys: T/G raise and lower the sun temperature, Y/H its intensity,
R/F zoom, Space pauses, Escape quits.`,
			Flags:  append([]cli.Flag{presetFlag}, sizeFlags...),
			Action: view,
		},
		{
			Name:  "stats",
			Usage: "render frames off-screen and print per-frame statistics",
			Flags: append([]cli.Flag{
				presetFlag,
				cli.IntFlag{
					Name:  "frames, n",
					Value: 10,
					Usage: "number of frames",
				},
			}, sizeFlags...),
			Action: printStats,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}
