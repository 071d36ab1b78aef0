package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

// Console drives an engine from text commands and prints the boards after
// every change. It is the terminal counterpart of the window UI.
type Console struct {
	engine     *engine.Engine
	difficulty engine.Difficulty
	in         io.Reader

	mu       sync.Mutex
	out      io.Writer
	renderer *Renderer
	dirty    bool
}

// New builds a console and installs its hooks on e. d is used when start or
// restart is typed without a difficulty.
func New(e *engine.Engine, d engine.Difficulty, in io.Reader, out io.Writer) *Console {
	c := &Console{
		engine:     e,
		difficulty: d,
		in:         in,
		out:        out,
		renderer:   NewRenderer(out),
	}

	e.HandleBoardChanged = func(engine.Owner) {
		c.mu.Lock()
		c.dirty = true
		c.mu.Unlock()
	}

	e.HandleStatus = c.showStatus

	e.HandlePhaseChanged = func(phase engine.Phase) {
		log.Debug("phase changed", "phase", phase)
	}

	return c
}

// showStatus prints the boards if they changed since the last status line,
// then the status itself.
func (c *Console) showStatus(msg string) {
	s, started := c.engine.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dirty && started {
		fmt.Fprintln(c.out, c.renderer.Session(&s))
	}
	c.dirty = false
	fmt.Fprintln(c.out, c.renderer.Status(msg))
}

func (c *Console) println(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, msg)
}

// Run reads commands until quit, end of input or ctx is done. It returns nil
// on quit or end of input.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	c.println(helpText)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if quit := c.handle(line); quit {
				return nil
			}
		}
	}
}

func (c *Console) handle(line string) bool {
	cmd, err := Parse(line)
	if errors.Is(err, ErrEmptyCommand) {
		return false
	}
	if err != nil {
		log.Debug("bad command", "line", line, "err", err)
		c.println(err.Error())
		return false
	}

	switch cmd.Kind {
	case QuitCommand:
		return true
	case HelpCommand:
		c.println(helpText)
	case ShowCommand:
		c.show()
	case StartCommand, RestartCommand:
		d := c.difficulty
		if cmd.HasDifficulty {
			d = cmd.Difficulty
			c.difficulty = d
		}
		start := c.engine.Start
		if cmd.Kind == RestartCommand {
			start = c.engine.Restart
		}
		if err := start(d); err != nil {
			log.Error("could not start session", "err", err)
			c.println(err.Error())
		}
	case CellCommand:
		c.cell(cmd.Cell)
	}
	return false
}

// cell routes a cell to placement or firing by the current phase.
func (c *Console) cell(at engine.Coord) {
	s, started := c.engine.Snapshot()
	if !started {
		c.println("Type 'start' to begin")
		return
	}

	switch s.Phase {
	case engine.Placement:
		if res := c.engine.PlaceShip(at); res != engine.Placed {
			c.println(fmt.Sprintf("Cannot place at %s: %s", at, res))
		}
	case engine.PlayerTurn:
		c.engine.Fire(at)
	case engine.ComputerTurn:
		c.println("Wait for the enemy to fire")
	default:
		c.println("Game over. Type 'restart' to play again")
	}
}

func (c *Console) show() {
	s, started := c.engine.Snapshot()
	if !started {
		c.println("Type 'start' to begin")
		return
	}
	c.println(c.renderer.Session(&s))
}
