package engine

import (
	"errors"
	"fmt"
	"math/rand"
)

const FleetSize = 5

// maxPlacementAttempts bounds random auto-placement. With 5 ships on 100
// cells it is never approached in practice.
const maxPlacementAttempts = 10000

var ErrPlacementExhausted = errors.New("failed to place ships")

type PlaceResult int

const (
	Placed PlaceResult = iota
	Occupied
	QuotaExhausted
	OutOfBounds
	OutOfPhase
)

func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "placed"
	case Occupied:
		return "occupied"
	case QuotaExhausted:
		return "quota exhausted"
	case OutOfBounds:
		return "out of bounds"
	case OutOfPhase:
		return "out of phase"
	default:
		panic(fmt.Sprintf("Invalid place result: %d", int(r)))
	}
}

// PlaceShip puts a ship on c when the cell is empty and ships remain to be
// placed, decrementing *remaining. Any other result leaves both untouched.
func PlaceShip(b *Board, remaining *int, c Coord) PlaceResult {
	if !c.InBounds() {
		return OutOfBounds
	}
	if *remaining <= 0 {
		return QuotaExhausted
	}
	if b.GetCell(c) != Empty {
		return Occupied
	}
	b.SetCell(c, Ship)
	*remaining--
	return Placed
}

// AutoPlace samples uniformly random cells until count ships are placed.
func AutoPlace(b *Board, rnd *rand.Rand, count int) error {
	remaining := count
	for tries := 0; remaining > 0; tries++ {
		if tries >= maxPlacementAttempts {
			return fmt.Errorf("%w: %d of %d left after %d attempts", ErrPlacementExhausted, remaining, count, tries)
		}
		c := Coord{X: rnd.Intn(BoardSize), Y: rnd.Intn(BoardSize)}
		PlaceShip(b, &remaining, c)
	}
	return nil
}
