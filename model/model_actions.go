package model

// NewEmptyBoard lays out size*size cells in serpentine order: even rows run
// left to right, odd rows right to left, row 0 at the bottom.
func NewEmptyBoard(size int) *Board {
	coords := make(map[Cell]Coord, size*size)
	for r := 0; r < size; r++ {
		for i := 0; i < size; i++ {
			c := i
			if r%2 == 1 {
				c = size - 1 - i
			}
			coords[Cell(r*size+i+1)] = Coord{Col: c, Row: r}
		}
	}
	return &Board{
		Size:    size,
		Coords:  coords,
		Ladders: make(map[Cell]Cell),
		Snakes:  make(map[Cell]Cell),
	}
}

// Last is the finish cell.
func (b *Board) Last() Cell {
	return Cell(b.Size * b.Size)
}

func (b *Board) Contains(c Cell) bool {
	return c >= 1 && c <= b.Last()
}

// CellAt is the inverse of Coords.
func (b *Board) CellAt(co Coord) (Cell, bool) {
	if co.Col < 0 || co.Col >= b.Size || co.Row < 0 || co.Row >= b.Size {
		return 0, false
	}
	i := co.Col
	if co.Row%2 == 1 {
		i = b.Size - 1 - co.Col
	}
	return Cell(co.Row*b.Size + i + 1), true
}

// Clone copies the board so a session can hand it out without sharing maps.
func (b *Board) Clone() *Board {
	n := NewEmptyBoard(b.Size)
	for s, e := range b.Ladders {
		n.Ladders[s] = e
	}
	for s, e := range b.Snakes {
		n.Snakes[s] = e
	}
	return n
}

func NewPlayers() [2]Player {
	return [2]Player{
		{Id: Player1, Position: 1, Color: PlayerColors[Player1]},
		{Id: Player2, Position: 1, Color: PlayerColors[Player2]},
	}
}
