package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

const DiceSides = 6

type Dice interface {
	Roll() int
}

// RandDice is a fair six-sided die. Rolls are independent draws from rng.
type RandDice struct {
	rng *rand.Rand
}

func NewDice(rng *rand.Rand) *RandDice {
	return &RandDice{rng: rng}
}

func (d *RandDice) Roll() int {
	return d.rng.Intn(DiceSides) + 1
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
