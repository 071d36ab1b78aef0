package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardBounds(t *testing.T) {
	var b Board

	assert.Panics(t, func() { b.GetCell(Coord{X: -1, Y: 0}) })
	assert.Panics(t, func() { b.GetCell(Coord{X: 0, Y: BoardSize}) })
	assert.Panics(t, func() { b.SetCell(Coord{X: BoardSize, Y: 0}, Ship) })
	assert.NotPanics(t, func() { b.SetCell(Coord{X: 9, Y: 9}, Ship) })
}

func TestBoardUntargeted(t *testing.T) {
	var b Board
	b.SetCell(Coord{X: 0, Y: 0}, Hit)
	b.SetCell(Coord{X: 1, Y: 0}, Miss)
	b.SetCell(Coord{X: 2, Y: 0}, Ship)

	free := b.Untargeted()

	assert.Len(t, free, 98)
	assert.Equal(t, Coord{X: 2, Y: 0}, free[0])
	assert.True(t, b.Targeted(Coord{X: 0, Y: 0}))
	assert.False(t, b.Targeted(Coord{X: 2, Y: 0}))
}

func TestAllShipsDestroyed(t *testing.T) {
	var b Board
	assert.True(t, b.AllShipsDestroyed(), "empty board has no ships left")

	b.SetCell(Coord{X: 3, Y: 3}, Ship)
	assert.False(t, b.AllShipsDestroyed())

	assert.Equal(t, ShotHit, Fire(&b, Coord{X: 3, Y: 3}))
	assert.True(t, b.AllShipsDestroyed())
}

func TestBoardView(t *testing.T) {
	var b Board
	ship, hit, miss := Coord{X: 1, Y: 1}, Coord{X: 2, Y: 2}, Coord{X: 3, Y: 3}
	b.SetCell(ship, Ship)
	b.SetCell(hit, Hit)
	b.SetCell(miss, Miss)

	assert.Equal(t, ViewShip, b.View(ship, OwnerView))
	assert.Equal(t, ViewEmpty, b.View(ship, OpponentView))
	assert.Equal(t, ViewHit, b.View(hit, OpponentView))
	assert.Equal(t, ViewMiss, b.View(miss, OpponentView))
	assert.Equal(t, ViewEmpty, b.View(Coord{X: 0, Y: 0}, OwnerView))
}

func TestNeighbors(t *testing.T) {
	got := Neighbors(Coord{X: 5, Y: 5})
	require.Len(t, got, 4)
	assert.Equal(t, []Coord{{X: 6, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 4}}, got)

	corner := Neighbors(Coord{X: 0, Y: 0})
	assert.False(t, corner[1].InBounds())
	assert.False(t, corner[3].InBounds())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{" Medium ", Medium},
		{"HARD", Hard},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := ParseDifficulty("nightmare")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func mustParse(t *testing.T, s string) Difficulty {
	t.Helper()
	d, err := ParseDifficulty(s)
	require.NoError(t, err)
	return d
}
