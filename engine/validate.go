package engine

import (
	"errors"
	"fmt"

	"github.com/zucenko/ladders/model"
)

var ErrInvalidBoard = errors.New("invalid board")

// ValidateBoard reports the first ladder or snake that breaks the placement
// rules GenerateBoard follows.
func ValidateBoard(b *model.Board) error {
	if b.Size < 2 {
		return fmt.Errorf("%w: size %d", ErrInvalidBoard, b.Size)
	}
	if len(b.Coords) != b.Size*b.Size {
		return fmt.Errorf("%w: %d coords for %d cells", ErrInvalidBoard, len(b.Coords), b.Size*b.Size)
	}
	for s, e := range b.Ladders {
		if err := checkTransition(b, "ladder", s, e); err != nil {
			return err
		}
		if e <= s {
			return fmt.Errorf("%w: ladder %d->%d goes down", ErrInvalidBoard, s, e)
		}
		if _, clash := b.Snakes[s]; clash {
			return fmt.Errorf("%w: cell %d is both ladder and snake", ErrInvalidBoard, s)
		}
	}
	for s, e := range b.Snakes {
		if err := checkTransition(b, "snake", s, e); err != nil {
			return err
		}
		if e >= s {
			return fmt.Errorf("%w: snake %d->%d goes up", ErrInvalidBoard, s, e)
		}
	}
	return nil
}

func checkTransition(b *model.Board, kind string, s, e model.Cell) error {
	last := b.Last()
	if s <= 1 || s >= last {
		return fmt.Errorf("%w: %s starts at %d", ErrInvalidBoard, kind, s)
	}
	if e < 2 || e > last-1 {
		return fmt.Errorf("%w: %s %d ends at %d", ErrInvalidBoard, kind, s, e)
	}
	if d := int(e - s); d%b.Size != 0 {
		return fmt.Errorf("%w: %s %d->%d is not a multiple of the row width", ErrInvalidBoard, kind, s, e)
	}
	return nil
}
