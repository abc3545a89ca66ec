package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render scenes with recursive ray tracing"
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
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a png file",
			Description: `
Build the named scene, cluster its geometry into a bounding volume hierarchy
and trace every pixel in parallel. The image is written to <out>/<scene>.png.

Width, height and the camera flags override the scene's own settings; flags
left at zero keep the scene defaults.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "image height in pixels",
				},
				cli.IntFlag{
					Name:  "aa",
					Usage: "anti-aliasing rays per pixel, rounded up to a square",
				},
				cli.Float64Flag{
					Name:  "dof-aperture",
					Usage: "lens radius for depth of field",
				},
				cli.IntFlag{
					Name:  "dof-samples",
					Value: 8,
					Usage: "lens rays per primary ray",
				},
				cli.Float64Flag{
					Name:  "dof-focal",
					Usage: "distance to the plane in focus",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render goroutines (0 = CPU count)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base seed for the samplers",
				},
				cli.BoolFlag{
					Name:  "quiet, q",
					Usage: "suppress progress reports",
				},
				cli.BoolFlag{
					Name:  "no-bvh",
					Usage: "disable the bounding volume hierarchy",
				},
				cli.IntFlag{
					Name:  "grid",
					Usage: "overlay a grid line every N pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output",
					Usage: "output directory",
				},
			},
			Action: RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}
	return app
}
