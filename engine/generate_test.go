package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ladders/model"
)

func TestGenerateBoardPlacementRules(t *testing.T) {
	const n = GridSize
	for seed := int64(0); seed < 300; seed++ {
		b := GenerateBoard(rand.New(rand.NewSource(seed)), n, DefaultLadders, DefaultSnakes)

		assert.LessOrEqual(t, len(b.Ladders), DefaultLadders)
		assert.LessOrEqual(t, len(b.Snakes), DefaultSnakes)
		for s, e := range b.Ladders {
			require.Greater(t, int(e), int(s), "seed %d ladder %d->%d", seed, s, e)
			require.LessOrEqual(t, int(e), n*n-1, "seed %d ladder %d->%d", seed, s, e)
			require.Zero(t, int(e-s)%n, "seed %d ladder %d->%d", seed, s, e)
		}
		for s, e := range b.Snakes {
			require.Less(t, int(e), int(s), "seed %d snake %d->%d", seed, s, e)
			require.GreaterOrEqual(t, int(e), 2, "seed %d snake %d->%d", seed, s, e)
			require.Zero(t, int(s-e)%n, "seed %d snake %d->%d", seed, s, e)
		}
		for _, m := range []map[model.Cell]model.Cell{b.Ladders, b.Snakes} {
			assert.NotContains(t, m, model.Cell(1))
			assert.NotContains(t, m, model.Cell(n*n))
		}
		require.NoError(t, ValidateBoard(b), "seed %d", seed)
	}
}

func TestGenerateBoardIsDeterministicForSeed(t *testing.T) {
	a := GenerateBoard(rand.New(rand.NewSource(2024)), GridSize, 5, 5)
	b := GenerateBoard(rand.New(rand.NewSource(2024)), GridSize, 5, 5)
	assert.Equal(t, a.Ladders, b.Ladders)
	assert.Equal(t, a.Snakes, b.Snakes)
}

func TestGenerateBoardCapsCounts(t *testing.T) {
	b := GenerateBoard(rand.New(rand.NewSource(3)), GridSize, 500, 500)
	assert.LessOrEqual(t, len(b.Ladders)+len(b.Snakes), GridSize*GridSize-2)
	require.NoError(t, ValidateBoard(b))

	// only cells 2 to 89 can climb a row without reaching the finish
	b = GenerateBoard(rand.New(rand.NewSource(3)), GridSize, 98, 0)
	assert.Len(t, b.Ladders, 88)
	assert.Empty(t, b.Snakes)
}

func TestGenerateBoardNegativeCounts(t *testing.T) {
	b := GenerateBoard(rand.New(rand.NewSource(1)), GridSize, -1, -4)
	assert.Empty(t, b.Ladders)
	assert.Empty(t, b.Snakes)
	assert.Len(t, b.Coords, GridSize*GridSize)
}

func TestGenerateBoardSmallestGrid(t *testing.T) {
	b := GenerateBoard(rand.New(rand.NewSource(1)), 2, 1, 1)
	assert.Empty(t, b.Ladders)
	assert.Empty(t, b.Snakes)
}

func TestValidateBoardRejects(t *testing.T) {
	tests := []struct {
		name    string
		ladders map[model.Cell]model.Cell
		snakes  map[model.Cell]model.Cell
	}{
		{name: "ladder from start", ladders: map[model.Cell]model.Cell{1: 11}},
		{name: "ladder to finish", ladders: map[model.Cell]model.Cell{90: 100}},
		{name: "ladder down", ladders: map[model.Cell]model.Cell{40: 30}},
		{name: "ladder off row width", ladders: map[model.Cell]model.Cell{4: 15}},
		{name: "snake from finish", snakes: map[model.Cell]model.Cell{100: 90}},
		{name: "snake to start", snakes: map[model.Cell]model.Cell{11: 1}},
		{name: "snake up", snakes: map[model.Cell]model.Cell{30: 40}},
		{name: "both on one cell", ladders: map[model.Cell]model.Cell{30: 40}, snakes: map[model.Cell]model.Cell{30: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := model.NewEmptyBoard(GridSize)
			for s, e := range tt.ladders {
				b.Ladders[s] = e
			}
			for s, e := range tt.snakes {
				b.Snakes[s] = e
			}
			assert.True(t, errors.Is(ValidateBoard(b), ErrInvalidBoard))
		})
	}
}

func TestRandDiceRange(t *testing.T) {
	d := NewDice(rand.New(rand.NewSource(5)))
	seen := make(map[int]bool)
	for i := 0; i < 600; i++ {
		v := d.Roll()
		require.True(t, v >= 1 && v <= DiceSides, "roll %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, DiceSides)
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
