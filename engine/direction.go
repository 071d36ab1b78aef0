package engine

type Direction int

const (
	Right Direction = iota
	Left
	Down
	Up
)

// ProbeOrder is the fixed neighbor order used by the targeting tiers:
// (+1,0), (-1,0), (0,+1), (0,-1).
var ProbeOrder = []Direction{Right, Left, Down, Up}

func DirToOffset(dir Direction) Coord {
	switch dir {
	case Right:
		return Coord{X: 1, Y: 0}
	case Left:
		return Coord{X: -1, Y: 0}
	case Down:
		return Coord{X: 0, Y: 1}
	case Up:
		return Coord{X: 0, Y: -1}
	default:
		panic("Invalid direction")
	}
}
