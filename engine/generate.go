package engine

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
)

const (
	GridSize       = 10
	DefaultLadders = 5
	DefaultSnakes  = 5
)

// GenerateBoard places ladders and snakes on a fresh size*size board.
//
// Sources come from a shuffled list of the cells between start and finish;
// ladder sources are taken first and snake sources from the remainder, so no
// cell is both. A ladder climbs by a multiple of size and never reaches the
// finish; a snake drops by a multiple of size and never below cell 2. A
// source with no such destination is dropped, so the board may end up with
// fewer transitions than asked for. Counts larger than the available cells
// are capped.
func GenerateBoard(rng *rand.Rand, size, ladders, snakes int) *model.Board {
	board := model.NewEmptyBoard(size)
	last := int(board.Last())

	candidates := make([]model.Cell, 0, last)
	for c := 2; c <= last-1; c++ {
		candidates = append(candidates, model.Cell(c))
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	ladders = clamp(ladders, len(candidates))
	for _, start := range candidates[:ladders] {
		ends := make([]model.Cell, 0)
		for e := int(start) + size; e <= last-1; e += size {
			ends = append(ends, model.Cell(e))
		}
		if len(ends) == 0 {
			log.Debugf("GenerateBoard ladder at %d has nowhere to go, dropped", start)
			continue
		}
		board.Ladders[start] = ends[rng.Intn(len(ends))]
	}

	snakeStarts := make([]model.Cell, 0, len(candidates)-ladders)
	for _, c := range candidates[ladders:] {
		if c > 2 {
			snakeStarts = append(snakeStarts, c)
		}
	}
	rng.Shuffle(len(snakeStarts), func(i, j int) {
		snakeStarts[i], snakeStarts[j] = snakeStarts[j], snakeStarts[i]
	})

	snakes = clamp(snakes, len(snakeStarts))
	for _, start := range snakeStarts[:snakes] {
		ends := make([]model.Cell, 0)
		for e := int(start) - size; e >= 2; e -= size {
			ends = append(ends, model.Cell(e))
		}
		if len(ends) == 0 {
			log.Debugf("GenerateBoard snake at %d has nowhere to go, dropped", start)
			continue
		}
		board.Snakes[start] = ends[rng.Intn(len(ends))]
	}

	return board
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
