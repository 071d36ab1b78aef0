package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrOffBoard       = errors.New("cell is off the board")
)

type CommandKind int

const (
	CellCommand CommandKind = iota
	StartCommand
	RestartCommand
	ShowCommand
	HelpCommand
	QuitCommand
)

// Command is one parsed input line. Cell is set for CellCommand, Difficulty
// for StartCommand and RestartCommand when HasDifficulty is true.
type Command struct {
	Kind          CommandKind
	Cell          engine.Coord
	Difficulty    engine.Difficulty
	HasDifficulty bool
}

const helpText = `commands:
  x y | x,y            place a ship (placement) or fire (your turn)
  start [easy|medium|hard]
  restart [easy|medium|hard]
  show                 redraw both boards
  help
  quit`

// Parse reads one input line. Cells are column then row, both 0-9.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	switch strings.ToLower(fields[0]) {
	case "start", "restart":
		cmd := Command{Kind: StartCommand}
		if strings.EqualFold(fields[0], "restart") {
			cmd.Kind = RestartCommand
		}
		if len(fields) > 2 {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		}
		if len(fields) == 2 {
			d, err := engine.ParseDifficulty(fields[1])
			if err != nil {
				return Command{}, err
			}
			cmd.Difficulty = d
			cmd.HasDifficulty = true
		}
		return cmd, nil
	case "show", "board":
		return Command{Kind: ShowCommand}, nil
	case "help", "?":
		return Command{Kind: HelpCommand}, nil
	case "quit", "exit", "q":
		return Command{Kind: QuitCommand}, nil
	}

	if len(fields) != 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	x, errX := strconv.Atoi(fields[0])
	y, errY := strconv.Atoi(fields[1])
	if errX != nil || errY != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}
	c := engine.Coord{X: x, Y: y}
	if !c.InBounds() {
		return Command{}, fmt.Errorf("%w: %s", ErrOffBoard, c)
	}
	return Command{Kind: CellCommand, Cell: c}, nil
}
