package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"3 4", Command{Kind: CellCommand, Cell: engine.Coord{X: 3, Y: 4}}},
		{"3,4", Command{Kind: CellCommand, Cell: engine.Coord{X: 3, Y: 4}}},
		{"  9 , 0 ", Command{Kind: CellCommand, Cell: engine.Coord{X: 9, Y: 0}}},
		{"start", Command{Kind: StartCommand}},
		{"start hard", Command{Kind: StartCommand, Difficulty: engine.Hard, HasDifficulty: true}},
		{"RESTART Medium", Command{Kind: RestartCommand, Difficulty: engine.Medium, HasDifficulty: true}},
		{"show", Command{Kind: ShowCommand}},
		{"help", Command{Kind: HelpCommand}},
		{"quit", Command{Kind: QuitCommand}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		err  error
	}{
		{"", ErrEmptyCommand},
		{"   ", ErrEmptyCommand},
		{"fire", ErrUnknownCommand},
		{"1 2 3", ErrUnknownCommand},
		{"a b", ErrUnknownCommand},
		{"10 0", ErrOffBoard},
		{"0 -1", ErrOffBoard},
		{"start impossible", engine.ErrUnknownDifficulty},
		{"start easy now", ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
