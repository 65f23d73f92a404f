package engine

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/ladders/model"
)

type scriptedDice struct {
	rolls []int
	next  int
}

func (d *scriptedDice) Roll() int {
	v := d.rolls[d.next%len(d.rolls)]
	d.next++
	return v
}

func fixedSession(t *testing.T, layout string, rolls ...int) *Session {
	t.Helper()
	board, err := ReadLayout(strings.NewReader(layout), GridSize)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Layout = board
	return NewSession(opts, rand.New(rand.NewSource(1)), &scriptedDice{rolls: rolls})
}

func TestRollScenarios(t *testing.T) {
	tests := []struct {
		name      string
		from      model.Cell
		dice      int
		wantTo    model.Cell
		wantState State
		wantTurn  model.PlayerId
		overshoot bool
	}{
		{name: "plain move", from: 95, dice: 4, wantTo: 99, wantState: AWAITING_ROLL, wantTurn: model.Player2},
		{name: "overshoot", from: 97, dice: 6, wantTo: 97, wantState: AWAITING_ROLL, wantTurn: model.Player1, overshoot: true},
		{name: "exact finish", from: 94, dice: 6, wantTo: 100, wantState: GAME_OVER, wantTurn: model.Player1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixedSession(t, "", tt.dice)
			s.Players[0].Position = tt.from

			res, err := s.Roll()
			require.NoError(t, err)

			assert.Equal(t, tt.wantTo, s.Players[0].Position)
			assert.Equal(t, tt.wantTo, res.To)
			assert.Equal(t, tt.wantState, s.State)
			assert.Equal(t, tt.wantTurn, s.Turn)
			assert.Equal(t, tt.overshoot, res.Overshoot)
			assert.Equal(t, tt.dice, s.LastDice)
			assert.Equal(t, model.Cell(1), s.Players[1].Position)
		})
	}
}

func TestRollFinishSetsWinner(t *testing.T) {
	s := fixedSession(t, "", 6)
	s.Turn = model.Player2
	s.Players[1].Position = 94

	res, err := s.Roll()
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.True(t, s.Over())
	assert.Equal(t, model.Player2, s.Winner)
	assert.Equal(t, model.Player2, s.Turn)
}

func TestRollAfterGameOverIsIgnored(t *testing.T) {
	s := fixedSession(t, "", 6, 1)
	s.Players[0].Position = 94
	_, err := s.Roll()
	require.NoError(t, err)

	_, err = s.Roll()
	assert.True(t, errors.Is(err, ErrGameOver))
	assert.Equal(t, model.Player1, s.Winner)
	assert.Equal(t, model.Cell(100), s.Players[0].Position)
	assert.Equal(t, model.Cell(1), s.Players[1].Position)
	assert.Equal(t, 6, s.LastDice)
}

func TestRollTransitions(t *testing.T) {
	layout := `
# fixture
ladder 4 24
snake 24 14
snake 47 7
ladder 9 29
`
	tests := []struct {
		name   string
		from   model.Cell
		dice   int
		landed model.Cell
		to     model.Cell
		via    Via
	}{
		{name: "ladder", from: 3, dice: 6, landed: 9, to: 29, via: VIA_LADDER},
		{name: "snake", from: 45, dice: 2, landed: 47, to: 7, via: VIA_SNAKE},
		{name: "ladder then snake", from: 1, dice: 3, landed: 4, to: 14, via: VIA_LADDER_SNAKE},
		{name: "snake head reached directly", from: 20, dice: 4, landed: 24, to: 14, via: VIA_SNAKE},
		{name: "nothing", from: 10, dice: 2, landed: 12, to: 12, via: VIA_NONE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixedSession(t, layout, tt.dice)
			s.Players[0].Position = tt.from

			res, err := s.Roll()
			require.NoError(t, err)
			assert.Equal(t, tt.from, res.From)
			assert.Equal(t, tt.landed, res.Landed)
			assert.Equal(t, tt.to, res.To)
			assert.Equal(t, tt.via, res.Via)
			assert.Equal(t, tt.to, s.Players[0].Position)
			assert.Equal(t, model.Player2, s.Turn)
		})
	}
}

func TestTurnsAlternate(t *testing.T) {
	s := fixedSession(t, "", 1)
	want := []model.PlayerId{model.Player1, model.Player2, model.Player1, model.Player2, model.Player1}
	for i, w := range want {
		res, err := s.Roll()
		require.NoError(t, err)
		assert.Equal(t, w, res.Player, "roll %d", i)
	}
	assert.Equal(t, model.Cell(4), s.Players[0].Position)
	assert.Equal(t, model.Cell(3), s.Players[1].Position)
}

func TestOvershootKeepsTurn(t *testing.T) {
	s := fixedSession(t, "", 5, 5, 2)
	s.Players[0].Position = 97

	res, err := s.Roll()
	require.NoError(t, err)
	assert.True(t, res.Overshoot)
	assert.Equal(t, model.Player1, s.Turn)

	res, err = s.Roll()
	require.NoError(t, err)
	assert.True(t, res.Overshoot)
	assert.Equal(t, model.Player1, res.Player)

	res, err = s.Roll()
	require.NoError(t, err)
	assert.Equal(t, model.Cell(99), res.To)
	assert.Equal(t, model.Player2, s.Turn)
}

func TestResetRoundTrip(t *testing.T) {
	s := NewSeededSession(DefaultOptions(), 7)
	for !s.Over() {
		_, err := s.Roll()
		require.NoError(t, err)
	}
	s.Reset()

	assert.Equal(t, AWAITING_ROLL, s.State)
	assert.Equal(t, model.Player1, s.Turn)
	assert.Equal(t, model.NoPlayer, s.Winner)
	assert.Equal(t, 0, s.LastDice)
	assert.Equal(t, model.Cell(1), s.Player(model.Player1).Position)
	assert.Equal(t, model.Cell(1), s.Player(model.Player2).Position)
	require.NoError(t, ValidateBoard(s.Board))
}

func TestResetKeepsFixedLayout(t *testing.T) {
	s := fixedSession(t, "ladder 4 24\n", 3)
	_, err := s.Roll()
	require.NoError(t, err)
	s.Board.Ladders[5] = 25

	s.Reset()
	assert.Equal(t, map[model.Cell]model.Cell{4: 24}, s.Board.Ladders)
}

func TestHandle(t *testing.T) {
	s := fixedSession(t, "", 2)

	res, err := s.Handle(ROLL_REQUESTED)
	require.NoError(t, err)
	assert.Equal(t, model.Cell(3), res.To)

	_, err = s.Handle(RESTART_REQUESTED)
	require.NoError(t, err)
	assert.Equal(t, model.Cell(1), s.Players[0].Position)
	assert.Equal(t, model.Player1, s.Turn)

	_, err = s.Handle(QUIT_REQUESTED)
	assert.True(t, errors.Is(err, ErrQuit))
}

func TestSeededSessionsAreReproducible(t *testing.T) {
	a := NewSeededSession(DefaultOptions(), 42)
	b := NewSeededSession(DefaultOptions(), 42)
	require.Equal(t, a.Board.Ladders, b.Board.Ladders)
	require.Equal(t, a.Board.Snakes, b.Board.Snakes)

	for i := 0; i < 50 && !a.Over(); i++ {
		ra, errA := a.Roll()
		rb, errB := b.Roll()
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, ra, rb)
	}
}

func TestSeededGamesFinish(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := NewSeededSession(DefaultOptions(), seed)
		turns := 0
		for !s.Over() && turns < 100000 {
			res, err := s.Roll()
			require.NoError(t, err)
			require.True(t, res.Dice >= 1 && res.Dice <= DiceSides)
			require.True(t, s.Board.Contains(res.To))
			turns++
		}
		require.True(t, s.Over(), "seed %d never finished", seed)
		assert.Equal(t, s.Board.Last(), s.Player(s.Winner).Position)
	}
}

func TestSetupCopiesBoard(t *testing.T) {
	s := fixedSession(t, "ladder 4 24\nsnake 47 7\n", 1)
	setup := s.Setup(99)
	setup.Ladders[5] = 25

	assert.Equal(t, 10, setup.Size)
	assert.Equal(t, int64(99), setup.Seed)
	assert.Equal(t, model.Player1, setup.Turn)
	assert.Equal(t, [2]model.Cell{1, 1}, setup.Positions)
	assert.NotContains(t, s.Board.Ladders, model.Cell(5))
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "AWAITING_ROLL", AWAITING_ROLL.Name())
	assert.Equal(t, "GAME_OVER", GAME_OVER.Name())
	assert.Equal(t, "N/A(9)", State(9).Name())
	assert.Equal(t, "ladder+snake", VIA_LADDER_SNAKE.Name())
}
