package model

// Cell is a square number on the board, 1 (start) to Size*Size (finish).
type Cell int

// Coord is a grid position. Row 0 is the bottom row of the board.
type Coord struct {
	Col, Row int
}

type PlayerId int

const (
	NoPlayer PlayerId = iota
	Player1
	Player2
)

// Other returns the player whose turn comes after p.
func (p PlayerId) Other() PlayerId {
	if p == Player1 {
		return Player2
	}
	return Player1
}

type Player struct {
	Id       PlayerId
	Position Cell
	// Color is 0xRRGGBB.
	Color uint32
}

var PlayerColors = map[PlayerId]uint32{
	Player1: 0xff0000,
	Player2: 0x00ff00,
}

type Board struct {
	Size    int
	Coords  map[Cell]Coord
	Ladders map[Cell]Cell
	Snakes  map[Cell]Cell
}
