package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

func TestRenderBoardPerspective(t *testing.T) {
	// given
	var b engine.Board
	b.SetCell(engine.Coord{X: 1, Y: 1}, engine.Ship)
	b.SetCell(engine.Coord{X: 2, Y: 2}, engine.Ship)
	b.SetCell(engine.Coord{X: 3, Y: 3}, engine.Hit)
	b.SetCell(engine.Coord{X: 4, Y: 4}, engine.Miss)
	r := NewRenderer(&bytes.Buffer{})

	// when
	owner := r.Board("mine", &b, engine.OwnerView)
	opponent := r.Board("theirs", &b, engine.OpponentView)

	// then
	assert.Equal(t, 2, strings.Count(owner, "#"))
	assert.Equal(t, 0, strings.Count(opponent, "#"))
	assert.Equal(t, 1, strings.Count(owner, "X"))
	assert.Equal(t, 1, strings.Count(opponent, "X"))
	assert.Equal(t, 1, strings.Count(opponent, "o"))
	assert.Contains(t, owner, "mine")
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, ".", glyph(engine.ViewEmpty))
	assert.Equal(t, "#", glyph(engine.ViewShip))
	assert.Equal(t, "X", glyph(engine.ViewHit))
	assert.Equal(t, "o", glyph(engine.ViewMiss))
	assert.Panics(t, func() { glyph(engine.CellView(9)) })
}
