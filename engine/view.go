package engine

// Perspective decides whether undiscovered ships are revealed.
type Perspective int

const (
	OwnerView Perspective = iota
	OpponentView
)

// CellView is what a render surface draws for one cell.
type CellView int

const (
	ViewEmpty CellView = iota
	ViewShip
	ViewHit
	ViewMiss
)

func (b *Board) View(c Coord, p Perspective) CellView {
	switch b.GetCell(c) {
	case Ship:
		if p == OwnerView {
			return ViewShip
		}
		return ViewEmpty
	case Hit:
		return ViewHit
	case Miss:
		return ViewMiss
	default:
		return ViewEmpty
	}
}
