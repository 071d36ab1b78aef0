package ui

import (
	"fmt"
	"image/color"

	"github.com/msrihanreddy5-code/ship-game/engine"
)

// AnimationStep tints the window background while the game moves through
// its phases, so the inter-turn delay is visible.
type AnimationStep int

const (
	Idle AnimationStep = iota
	Placing
	EnemyAiming
	Victory
	Defeat
)

func stepForPhase(p engine.Phase) AnimationStep {
	switch p {
	case engine.Placement:
		return Placing
	case engine.PlayerTurn:
		return Idle
	case engine.ComputerTurn:
		return EnemyAiming
	case engine.PlayerWon:
		return Victory
	case engine.PlayerLost:
		return Defeat
	default:
		panic(fmt.Sprintf("Invalid phase: %d", int(p)))
	}
}

func backgroundFor(step AnimationStep) color.NRGBA {
	switch step {
	case Idle:
		return seaBackgroundColor
	case Placing:
		return darkPurpleColor
	case EnemyAiming:
		return darkBlueColor
	case Victory:
		return darkGreenColor
	case Defeat:
		return darkRedColor
	default:
		panic(fmt.Sprintf("Invalid animation step: %d", step))
	}
}

func showAnimationStep(step AnimationStep) string {
	switch step {
	case Idle:
		return "Idle"
	case Placing:
		return "Placing"
	case EnemyAiming:
		return "EnemyAiming"
	case Victory:
		return "Victory"
	case Defeat:
		return "Defeat"
	default:
		panic(fmt.Sprintf("Invalid animation step: %d", step))
	}
}
