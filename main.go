package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"

	"tilerack/audio"
	"tilerack/controller"
	"tilerack/rack"
	"tilerack/ui"
)

func main() {
	app := cli.NewApp()
	app.Name = "tilerack"
	app.Usage = "drag letter tiles around a rack"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "letters",
			Value: "AEINRST",
			Usage: "letters on the rack, left to right",
		},
		cli.Float64Flag{
			Name:  "tile-width",
			Value: 50,
		},
		cli.Float64Flag{
			Name:  "tile-height",
			Value: 50,
		},
		cli.Float64Flag{
			Name:  "spacing",
			Value: 10,
			Usage: "gap between tiles",
		},
		cli.IntFlag{
			Name:  "steps",
			Value: 100,
			Usage: "animation steps per repositioning run, 0 to snap",
		},
		cli.IntFlag{
			Name:  "tick-hz",
			Value: 500,
			Usage: "fixed update rate",
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "disable drag sounds",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log drag events",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	if c.Bool("verbose") {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	cfg := rack.Config{
		TileWidth:      float32(c.Float64("tile-width")),
		TileHeight:     float32(c.Float64("tile-height")),
		Spacing:        float32(c.Float64("spacing")),
		AnimationSteps: c.Int("steps"),
	}

	// the rack origin doubles as the window margin
	r, err := cfg.New(40, 60, c.String("letters"))
	if err != nil {
		level.Error(logger).Log("msg", "bad rack configuration", "err", err)
		return err
	}

	var feedback controller.Feedback
	if !c.Bool("mute") {
		feedback = audio.NewPlayer()
	}

	ctrl := controller.New(r, logger, feedback)
	ui.New(r, ctrl, logger, c.Int("tick-hz")).Run()
	return nil
}
