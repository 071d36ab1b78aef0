package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRand(t *testing.T) {
	t.Run("fixed seed is reproducible", func(t *testing.T) {
		a, seedA := NewRand(42)
		b, seedB := NewRand(42)
		assert.Equal(t, int64(42), seedA)
		assert.Equal(t, seedA, seedB)
		assert.Equal(t, a.Int63(), b.Int63())
	})

	t.Run("zero seed picks one", func(t *testing.T) {
		_, seed := NewRand(0)
		assert.NotZero(t, seed)
	})
}
