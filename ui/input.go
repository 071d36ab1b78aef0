package ui

import (
	"gioui.org/f32"
	"gioui.org/unit"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

const CellSizeDp = unit.Dp(30)

// SurfaceSizeDp is the side of one board surface: 300dp.
const SurfaceSizeDp = CellSizeDp * engine.BoardSize

// CellAt maps a position in dp, relative to a board's top-left corner, to
// the cell under it. Positions off the surface are rejected.
func CellAt(pos f32.Point) (engine.Coord, bool) {
	size := float32(SurfaceSizeDp)
	if pos.X < 0 || pos.Y < 0 || pos.X >= size || pos.Y >= size {
		return engine.Coord{}, false
	}
	c := engine.Coord{
		X: int(pos.X / float32(CellSizeDp)),
		Y: int(pos.Y / float32(CellSizeDp)),
	}
	return c, c.InBounds()
}

// pxToDp converts a pointer position to dp using the frame's metric.
func pxToDp(pos f32.Point, m unit.Metric) f32.Point {
	scale := m.PxPerDp
	if scale == 0 {
		scale = 1
	}
	return f32.Point{X: pos.X / scale, Y: pos.Y / scale}
}
