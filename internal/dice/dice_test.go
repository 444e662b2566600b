package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRollerIsReproducible(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for range 1000 {
		assert.Equal(t, a.Roll(20), b.Roll(20))
	}
}

func TestSeededRollerStaysInRange(t *testing.T) {
	roller := New(nil)

	for _, d := range Chain {
		seen := make(map[int]bool)
		for range 5000 {
			v := roller.Roll(d.Sides())
			require.GreaterOrEqual(t, v, 1)
			require.LessOrEqual(t, v, d.Sides())
			seen[v] = true
		}
		assert.Len(t, seen, d.Sides(), "every face of %s should come up", d)
	}
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
