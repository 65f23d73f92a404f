package engine

import (
	"errors"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/ladders/model"
)

var (
	ErrGameOver = errors.New("game is over")
	ErrQuit     = errors.New("quit requested")
)

type Options struct {
	Size    int
	Ladders int
	Snakes  int
	// Layout, when set, is used instead of generating a board, on every reset.
	Layout *model.Board
}

func DefaultOptions() Options {
	return Options{Size: GridSize, Ladders: DefaultLadders, Snakes: DefaultSnakes}
}

// TurnResult describes one roll. Landed is where the dice took the piece,
// To is where it ended after ladders and snakes.
type TurnResult struct {
	Player    model.PlayerId
	Dice      int
	From      model.Cell
	Landed    model.Cell
	To        model.Cell
	Via       Via
	Overshoot bool
	Won       bool
}

// Session owns all state of one game. It is not safe for concurrent use.
type Session struct {
	State    State
	Board    *model.Board
	Players  [2]model.Player
	Turn     model.PlayerId
	Winner   model.PlayerId
	LastDice int

	opts Options
	rng  *rand.Rand
	dice Dice
}

// NewSession starts a game. A nil dice rolls from rng.
func NewSession(opts Options, rng *rand.Rand, dice Dice) *Session {
	if opts.Size < 2 {
		opts.Size = GridSize
	}
	if dice == nil {
		dice = NewDice(rng)
	}
	s := &Session{opts: opts, rng: rng, dice: dice}
	s.Reset()
	return s
}

// NewSeededSession makes board placement and dice reproducible from seed.
func NewSeededSession(opts Options, seed int64) *Session {
	return NewSession(opts, rand.New(rand.NewSource(seed)), nil)
}

// Reset starts over with a fresh board and both pieces on cell 1.
func (s *Session) Reset() {
	if s.opts.Layout != nil {
		s.Board = s.opts.Layout.Clone()
	} else {
		s.Board = GenerateBoard(s.rng, s.opts.Size, s.opts.Ladders, s.opts.Snakes)
	}
	s.Players = model.NewPlayers()
	s.Turn = model.Player1
	s.Winner = model.NoPlayer
	s.LastDice = 0
	s.State = AWAITING_ROLL
	log.WithFields(log.Fields{
		"ladders": len(s.Board.Ladders),
		"snakes":  len(s.Board.Snakes),
	}).Debug("Session.Reset")
}

// Roll plays one turn for the current player.
func (s *Session) Roll() (TurnResult, error) {
	if s.State != AWAITING_ROLL {
		return TurnResult{}, ErrGameOver
	}
	return s.apply(s.dice.Roll()), nil
}

func (s *Session) apply(dice int) TurnResult {
	p := s.Current()
	res := TurnResult{Player: p.Id, Dice: dice, From: p.Position}
	s.LastDice = dice

	candidate := p.Position + model.Cell(dice)
	if candidate > s.Board.Last() {
		res.Overshoot = true
		res.Landed = p.Position
		res.To = p.Position
		return res
	}

	res.Landed = candidate
	pos := candidate
	if end, ok := s.Board.Ladders[pos]; ok {
		pos = end
		res.Via = VIA_LADDER
	}
	if end, ok := s.Board.Snakes[pos]; ok {
		pos = end
		if res.Via == VIA_LADDER {
			res.Via = VIA_LADDER_SNAKE
		} else {
			res.Via = VIA_SNAKE
		}
	}
	p.Position = pos
	res.To = pos

	if pos == s.Board.Last() {
		s.State = GAME_OVER
		s.Winner = p.Id
		res.Won = true
	} else {
		s.Turn = s.Turn.Other()
	}
	return res
}

// Handle applies an input event. QUIT_REQUESTED yields ErrQuit.
func (s *Session) Handle(ev Event) (TurnResult, error) {
	switch ev {
	case ROLL_REQUESTED:
		return s.Roll()
	case RESTART_REQUESTED:
		s.Reset()
		return TurnResult{}, nil
	case QUIT_REQUESTED:
		return TurnResult{}, ErrQuit
	}
	log.Warnf("Session.Handle unknown event %s", ev.Name())
	return TurnResult{}, nil
}

func (s *Session) Current() *model.Player {
	return s.Player(s.Turn)
}

func (s *Session) Player(id model.PlayerId) *model.Player {
	if id == model.Player2 {
		return &s.Players[1]
	}
	return &s.Players[0]
}

func (s *Session) Over() bool {
	return s.State == GAME_OVER
}

// Setup is the spectator view of the board and pieces.
func (s *Session) Setup(seed int64) model.Setup {
	b := s.Board.Clone()
	return model.Setup{
		Size:      b.Size,
		Ladders:   b.Ladders,
		Snakes:    b.Snakes,
		Positions: [2]model.Cell{s.Players[0].Position, s.Players[1].Position},
		Turn:      s.Turn,
		Seed:      seed,
	}
}

func (r TurnResult) Info() model.TurnInfo {
	return model.TurnInfo{
		Player:    r.Player,
		Dice:      r.Dice,
		From:      r.From,
		Landed:    r.Landed,
		To:        r.To,
		Via:       r.Via.Name(),
		Overshoot: r.Overshoot,
		Won:       r.Won,
	}
}
