package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceShip(t *testing.T) {
	var b Board
	remaining := FleetSize

	for x := 0; x < FleetSize; x++ {
		require.Equal(t, Placed, PlaceShip(&b, &remaining, Coord{X: x, Y: 0}))
	}

	assert.Equal(t, 0, remaining)
	assert.Equal(t, QuotaExhausted, PlaceShip(&b, &remaining, Coord{X: 9, Y: 9}))
	assert.Equal(t, FleetSize, b.CountShips())
	assert.Equal(t, Empty, b.GetCell(Coord{X: 9, Y: 9}))
}

func TestPlaceShipRejections(t *testing.T) {
	var b Board
	remaining := FleetSize
	c := Coord{X: 4, Y: 4}

	require.Equal(t, Placed, PlaceShip(&b, &remaining, c))
	assert.Equal(t, Occupied, PlaceShip(&b, &remaining, c))
	assert.Equal(t, OutOfBounds, PlaceShip(&b, &remaining, Coord{X: 10, Y: 0}))
	assert.Equal(t, OutOfBounds, PlaceShip(&b, &remaining, Coord{X: 0, Y: -1}))
	assert.Equal(t, FleetSize-1, remaining)
	assert.Equal(t, 1, b.CountShips())
}

func TestAutoPlace(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		var b Board
		require.NoError(t, AutoPlace(&b, rand.New(rand.NewSource(seed)), FleetSize))
		assert.Equal(t, FleetSize, b.CountShips(), "seed %d", seed)
	}
}

func TestAutoPlaceExhausted(t *testing.T) {
	var b Board
	err := AutoPlace(&b, rand.New(rand.NewSource(1)), BoardSize*BoardSize+1)

	assert.ErrorIs(t, err, ErrPlacementExhausted)
	assert.Equal(t, BoardSize*BoardSize, b.CountShips())
}
