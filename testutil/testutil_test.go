package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChurnScript(t *testing.T) {
	rng := NewRNG(4711)

	ops := rng.ChurnScript(1000, 0.4)
	require.Len(t, ops, 1000)

	live, next, removes := 0, 0, 0
	for _, op := range ops {
		switch op.Kind {
		case OpAdd:
			assert.Equal(t, next, op.Value)
			next++
			live++
		case OpRemove:
			require.Greater(t, live, 0, "remove with nothing live")
			assert.Less(t, op.Victim, live)
			live--
			removes++
		}
	}
	assert.Greater(t, removes, 0)
}

func TestChurnScript_Deterministic(t *testing.T) {
	a := NewRNG(7).ChurnScript(200, 0.5)
	b := NewRNG(7).ChurnScript(200, 0.5)
	assert.Equal(t, a, b)

	rng := NewRNG(7)
	first := rng.ChurnScript(50, 0.5)
	rng.Reset()
	assert.Equal(t, first, rng.ChurnScript(50, 0.5))
}

func TestChurnScript_RatioBounds(t *testing.T) {
	rng := NewRNG(1)

	for _, op := range rng.ChurnScript(100, -1) {
		assert.Equal(t, OpAdd, op.Kind)
	}

	// Always-remove alternates, because nothing is live after each removal.
	ops := rng.ChurnScript(6, 2)
	for i, op := range ops {
		if i%2 == 0 {
			assert.Equal(t, OpAdd, op.Kind)
		} else {
			assert.Equal(t, OpRemove, op.Kind)
		}
	}
}

func TestShuffled(t *testing.T) {
	rng := NewRNG(3)
	perm := rng.Shuffled(10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, perm)
	assert.Equal(t, int64(3), rng.Seed())
}

func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "add", OpAdd.String())
	assert.Equal(t, "remove", OpRemove.String())
}
