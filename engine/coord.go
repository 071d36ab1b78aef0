package engine

import "fmt"

const BoardSize = 10

type Coord struct {
	X int
	Y int
}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func GetNeighbor(dir Direction, from Coord) Coord {
	offset := DirToOffset(dir)
	return Coord{X: from.X + offset.X, Y: from.Y + offset.Y}
}

// Neighbors returns the orthogonal neighbors of c in ProbeOrder, including
// off-board ones. Callers filter with InBounds.
func Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(ProbeOrder))
	for _, dir := range ProbeOrder {
		out = append(out, GetNeighbor(dir, c))
	}
	return out
}
