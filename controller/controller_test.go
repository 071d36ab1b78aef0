package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

func TestNewKeepsExplicitSeed(t *testing.T) {
	c := New(Config{Difficulty: engine.Hard, Seed: 42, FairHunt: true})

	assert.Equal(t, int64(42), c.Seed)
	assert.True(t, c.AI.FairHunt)
	assert.NotNil(t, c.Engine.Delay)
}

func TestNewPicksSeedWhenZero(t *testing.T) {
	c := New(Config{Difficulty: engine.Easy})

	assert.NotZero(t, c.Seed)
}

func TestRunConsolePlaysOneRound(t *testing.T) {
	// given
	c := New(Config{Difficulty: engine.Medium, Seed: 3})
	in := strings.NewReader("start\n0 0\n1 1\n2 2\n3 3\n4 4\n9 9\n")
	out := &bytes.Buffer{}

	// when
	err := c.RunConsole(context.Background(), in, out)

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Game started. Fire cannons!")
	assert.Contains(t, out.String(), "Your turn, fire!")

	s, ok := c.Engine.Snapshot()
	require.True(t, ok)
	assert.Equal(t, engine.Medium, s.Difficulty)
	assert.Equal(t, engine.PlayerTurn, s.Phase)
	assert.Len(t, s.PlayerBoard.Untargeted(), 99)
}
