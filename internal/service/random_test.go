package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomSource(t *testing.T) {
	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		first := NewRandomSource(7)
		second := NewRandomSource(7)

		for i := 0; i < 20; i++ {
			assert.Equal(t, first.Intn(8), second.Intn(8))
		}
	})

	t.Run("Stays within range", func(t *testing.T) {
		random := NewRandomSource(0)

		for i := 0; i < 100; i++ {
			n := random.Intn(3)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 3)
		}
	})
}
