package ui

import (
	"fmt"
	"image/color"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

var seaBackgroundColor = color.NRGBA{R: 12, G: 24, B: 48, A: 255}
var emptyColor = color.NRGBA{R: 0, G: 0, B: 0, A: 0}
var gridColor = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
var limeColor = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
var redColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
var whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var darkBlueColor = color.NRGBA{R: 0, G: 0, B: 127, A: 255}
var darkGreenColor = color.NRGBA{R: 0, G: 90, B: 0, A: 255}
var darkRedColor = color.NRGBA{R: 110, G: 0, B: 0, A: 255}
var darkPurpleColor = color.NRGBA{R: 60, G: 0, B: 75, A: 255}
var selectedColor = color.NRGBA{R: 0, G: 140, B: 140, A: 255}
var buttonColor = color.NRGBA{R: 40, G: 60, B: 100, A: 255}

func getColor(v engine.CellView) color.NRGBA {
	switch v {
	case engine.ViewEmpty:
		return emptyColor
	case engine.ViewShip:
		return limeColor
	case engine.ViewHit:
		return redColor
	case engine.ViewMiss:
		return whiteColor
	default:
		panic(fmt.Sprintf("Invalid cell view: %d", int(v)))
	}
}
