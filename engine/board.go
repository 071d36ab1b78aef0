package engine

import "fmt"

type CellState int

const (
	Empty CellState = iota
	Ship
	Hit
	Miss
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Ship:
		return "Ship"
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	default:
		panic(fmt.Sprintf("Invalid cell state: %d", int(c)))
	}
}

// Board is one side's 10x10 grid, indexed Cells[y][x].
type Board struct {
	Cells [BoardSize][BoardSize]CellState
}

func (b *Board) GetCell(c Coord) CellState {
	mustInBounds(c)
	return b.Cells[c.Y][c.X]
}

func (b *Board) SetCell(c Coord, state CellState) {
	mustInBounds(c)
	b.Cells[c.Y][c.X] = state
}

// Targeted reports whether c has already been fired upon.
func (b *Board) Targeted(c Coord) bool {
	s := b.GetCell(c)
	return s == Hit || s == Miss
}

func (b *Board) CountShips() int {
	n := 0
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b.Cells[y][x] == Ship {
				n++
			}
		}
	}
	return n
}

func (b *Board) AllShipsDestroyed() bool {
	return b.CountShips() == 0
}

// Untargeted lists every cell that has not been fired upon, row by row.
func (b *Board) Untargeted() []Coord {
	var out []Coord
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if s := b.Cells[y][x]; s != Hit && s != Miss {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

func mustInBounds(c Coord) {
	if !c.InBounds() {
		panic(fmt.Sprintf("Invalid cell position: %d, %d", c.X, c.Y))
	}
}
