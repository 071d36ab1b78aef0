package ui

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		name   string
		pos    f32.Point
		want   engine.Coord
		wantOk bool
	}{
		{"origin", f32.Point{X: 0, Y: 0}, engine.Coord{X: 0, Y: 0}, true},
		{"last pixel", f32.Point{X: 299, Y: 299}, engine.Coord{X: 9, Y: 9}, true},
		{"inside second cell", f32.Point{X: 30, Y: 59}, engine.Coord{X: 1, Y: 1}, true},
		{"fractional", f32.Point{X: 29.9, Y: 0.5}, engine.Coord{X: 0, Y: 0}, true},
		{"negative x", f32.Point{X: -1, Y: 10}, engine.Coord{}, false},
		{"negative y", f32.Point{X: 10, Y: -0.1}, engine.Coord{}, false},
		{"right edge", f32.Point{X: 300, Y: 10}, engine.Coord{}, false},
		{"bottom edge", f32.Point{X: 10, Y: 300}, engine.Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CellAt(tt.pos)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSurfaceSize(t *testing.T) {
	assert.Equal(t, unit.Dp(300), SurfaceSizeDp)
}

func TestPxToDp(t *testing.T) {
	got := pxToDp(f32.Point{X: 60, Y: 90}, unit.Metric{PxPerDp: 2})
	assert.Equal(t, f32.Point{X: 30, Y: 45}, got)

	// zero metric is treated as 1:1
	got = pxToDp(f32.Point{X: 7, Y: 8}, unit.Metric{})
	assert.Equal(t, f32.Point{X: 7, Y: 8}, got)
}
