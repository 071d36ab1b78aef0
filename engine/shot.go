package engine

import "fmt"

type ShotOutcome int

const (
	Rejected ShotOutcome = iota
	ShotHit
	ShotMiss
)

func (o ShotOutcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case ShotHit:
		return "hit"
	case ShotMiss:
		return "miss"
	default:
		panic(fmt.Sprintf("Invalid shot outcome: %d", int(o)))
	}
}

// Fire resolves a shot at c. A Ship cell becomes Hit, an Empty cell becomes
// Miss. Off-board or already resolved cells are Rejected without mutation.
func Fire(b *Board, c Coord) ShotOutcome {
	if !c.InBounds() || b.Targeted(c) {
		return Rejected
	}
	if b.GetCell(c) == Ship {
		b.SetCell(c, Hit)
		return ShotHit
	}
	b.SetCell(c, Miss)
	return ShotMiss
}
