package utils

import (
	"math/rand"
	"time"
)

// NewRand returns a generator seeded with seed, or with the current time
// when seed is 0. The seed actually used is returned so it can be logged and
// replayed.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
