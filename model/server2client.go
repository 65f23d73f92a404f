package model

type ServerMessage struct {
	Setup []Setup
	Turns []TurnInfo
}

type Setup struct {
	Size      int
	Ladders   map[Cell]Cell
	Snakes    map[Cell]Cell
	Positions [2]Cell
	Turn      PlayerId
	Seed      int64
}

type TurnInfo struct {
	Player    PlayerId
	Dice      int
	From      Cell
	Landed    Cell
	To        Cell
	Via       string
	Overshoot bool
	Won       bool
}
