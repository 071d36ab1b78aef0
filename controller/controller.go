package controller

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/msrihanreddy5-code/ship-game/ai"
	"github.com/msrihanreddy5-code/ship-game/console"
	"github.com/msrihanreddy5-code/ship-game/engine"
	"github.com/msrihanreddy5-code/ship-game/ui"
	"github.com/msrihanreddy5-code/ship-game/utils"
)

const DefaultTurnDelay = 800 * time.Millisecond

type Config struct {
	Difficulty engine.Difficulty
	// Seed 0 picks a time based seed.
	Seed      int64
	TurnDelay time.Duration
	FairHunt  bool
}

// Controller wires the engine, the computer's targeting and one front end.
type Controller struct {
	Config Config
	Engine *engine.Engine
	AI     *ai.AI
	Seed   int64
}

func New(cfg Config) *Controller {
	rnd, seed := utils.NewRand(cfg.Seed)

	// The engine only calls into the AI under its own lock, so one generator
	// serves both.
	brain := ai.New(rnd, cfg.FairHunt)
	e := engine.New(brain, rnd)

	delay := cfg.TurnDelay
	e.Delay = func() {
		time.Sleep(delay)
	}

	log.Info("game configured",
		"difficulty", cfg.Difficulty,
		"seed", seed,
		"turnDelay", delay,
		"fairHunt", cfg.FairHunt,
	)

	return &Controller{
		Config: cfg,
		Engine: e,
		AI:     brain,
		Seed:   seed,
	}
}

// RunGUI opens the game window. It does not return.
func (c *Controller) RunGUI() {
	ui.New(c.Engine, c.Config.Difficulty).Run()
}

// RunConsole plays on text streams until quit, end of input or ctx is done.
// A computer turn still pending when input ends is allowed to finish.
func (c *Controller) RunConsole(ctx context.Context, in io.Reader, out io.Writer) error {
	err := console.New(c.Engine, c.Config.Difficulty, in, out).Run(ctx)
	c.Engine.Wait()
	return err
}
