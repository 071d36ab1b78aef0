package engine

import (
	"errors"
	"fmt"
	"strings"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		panic(fmt.Sprintf("Invalid difficulty: %d", int(d)))
	}
}

type Phase int

const (
	Placement Phase = iota
	PlayerTurn
	ComputerTurn
	PlayerWon
	PlayerLost
)

func (p Phase) String() string {
	switch p {
	case Placement:
		return "Placement"
	case PlayerTurn:
		return "PlayerTurn"
	case ComputerTurn:
		return "ComputerTurn"
	case PlayerWon:
		return "PlayerWon"
	case PlayerLost:
		return "PlayerLost"
	default:
		panic(fmt.Sprintf("Invalid phase: %d", int(p)))
	}
}

func (p Phase) Terminal() bool {
	return p == PlayerWon || p == PlayerLost
}

// Owner identifies which side's board changed.
type Owner int

const (
	PlayerSide Owner = iota
	ComputerSide
)

func (o Owner) String() string {
	if o == PlayerSide {
		return "player"
	}
	return "computer"
}
