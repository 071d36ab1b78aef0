package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli"

	"github.com/msrihanreddy5-code/ship-game/controller"
	"github.com/msrihanreddy5-code/ship-game/engine"
)

func main() {
	app := cli.NewApp()
	app.Name = "ship-game"
	app.Usage = "single-player grid naval combat against the computer"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "difficulty, d",
			Value:  engine.Easy.String(),
			Usage:  "computer tier: easy, medium or hard",
			EnvVar: "SHIPGAME_DIFFICULTY",
		},
		cli.Int64Flag{
			Name:   "seed",
			Usage:  "random seed, 0 for time based",
			EnvVar: "SHIPGAME_SEED",
		},
		cli.DurationFlag{
			Name:   "turn-delay",
			Value:  controller.DefaultTurnDelay,
			Usage:  "pause before the computer fires",
			EnvVar: "SHIPGAME_TURN_DELAY",
		},
		cli.BoolFlag{
			Name:   "fair-hunt",
			Usage:  "hard tier queues every untargeted neighbor instead of peeking at ships",
			EnvVar: "SHIPGAME_FAIR_HUNT",
		},
		cli.StringFlag{
			Name:   "log-level",
			Value:  "info",
			Usage:  "debug, info, warn or error",
			EnvVar: "SHIPGAME_LOG_LEVEL",
		},
	}
	app.Before = func(c *cli.Context) error {
		level, err := log.ParseLevel(c.GlobalString("log-level"))
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		log.SetLevel(level)
		log.SetReportTimestamp(true)
		log.SetTimeFormat(time.Kitchen)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "gui",
			Usage:  "play in a window (default)",
			Action: runGUI,
		},
		{
			Name:   "console",
			Usage:  "play in the terminal",
			Action: runConsole,
		},
	}
	app.Action = runGUI

	if err := app.Run(os.Args); err != nil {
		log.Fatal("ship-game failed", "err", err)
	}
}

func configure(c *cli.Context) (*controller.Controller, error) {
	d, err := engine.ParseDifficulty(c.GlobalString("difficulty"))
	if err != nil {
		return nil, cli.NewExitError(err.Error(), 2)
	}
	return controller.New(controller.Config{
		Difficulty: d,
		Seed:       c.GlobalInt64("seed"),
		TurnDelay:  c.GlobalDuration("turn-delay"),
		FairHunt:   c.GlobalBool("fair-hunt"),
	}), nil
}

func runGUI(c *cli.Context) error {
	ctrl, err := configure(c)
	if err != nil {
		return err
	}
	ctrl.RunGUI()
	return nil
}

func runConsole(c *cli.Context) error {
	ctrl, err := configure(c)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ctrl.RunConsole(ctx, os.Stdin, os.Stdout)
}
