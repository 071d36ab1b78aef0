package ai

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

// maxRandomAttempts bounds rejection sampling before switching to an exact
// draw over the remaining cells. Both are uniform over untargeted cells.
const maxRandomAttempts = 1000

// AI is the computer's targeting engine. It implements engine.Targeter.
type AI struct {
	Rand *rand.Rand

	// FairHunt restricts the hard tier to what a real opponent could know:
	// every untargeted neighbor of the last hit is queued instead of only
	// the neighbors that actually hold a ship.
	FairHunt bool
}

func New(rnd *rand.Rand, fairHunt bool) *AI {
	return &AI{Rand: rnd, FairHunt: fairHunt}
}

func (ai *AI) NextTarget(b *engine.Board, d engine.Difficulty, m *engine.Memory) (engine.Coord, bool) {
	switch d {
	case engine.Easy:
		return ai.RandomTarget(b)
	case engine.Medium:
		return ai.AdjacentTarget(b, m)
	case engine.Hard:
		return ai.HuntTarget(b, m)
	default:
		panic(fmt.Sprintf("Invalid difficulty: %d", int(d)))
	}
}

// RandomTarget samples a uniformly random cell that has not been fired upon.
func (ai *AI) RandomTarget(b *engine.Board) (engine.Coord, bool) {
	for i := 0; i < maxRandomAttempts; i++ {
		c := engine.Coord{X: ai.Rand.Intn(engine.BoardSize), Y: ai.Rand.Intn(engine.BoardSize)}
		if !b.Targeted(c) {
			return c, true
		}
	}

	free := b.Untargeted()
	if len(free) == 0 {
		return engine.Coord{}, false
	}
	return free[ai.Rand.Intn(len(free))], true
}

// AdjacentTarget probes the first untargeted neighbor of the last hit, in
// probe order. It has no notion of whether the neighbor holds a ship.
func (ai *AI) AdjacentTarget(b *engine.Board, m *engine.Memory) (engine.Coord, bool) {
	if m.LastHit != nil {
		for _, n := range engine.Neighbors(*m.LastHit) {
			if n.InBounds() && !b.Targeted(n) {
				return n, true
			}
		}
	}
	return ai.RandomTarget(b)
}

// HuntTarget serves the hunt queue first. When it is empty the neighbors of
// the last hit are queued and the front is served. Queued cells are returned
// as-is.
func (ai *AI) HuntTarget(b *engine.Board, m *engine.Memory) (engine.Coord, bool) {
	if c, ok := m.Dequeue(); ok {
		return c, true
	}

	if m.LastHit != nil {
		for _, n := range engine.Neighbors(*m.LastHit) {
			if n.InBounds() && ai.worthHunting(b, n) {
				m.Enqueue(n)
			}
		}
		log.Debug("hunt queue built", "lastHit", *m.LastHit, "queued", len(m.HuntQueue), "fair", ai.FairHunt)
		if c, ok := m.Dequeue(); ok {
			return c, true
		}
	}
	return ai.RandomTarget(b)
}

func (ai *AI) worthHunting(b *engine.Board, c engine.Coord) bool {
	if ai.FairHunt {
		return !b.Targeted(c)
	}
	return b.GetCell(c) == engine.Ship
}
