package engine

import "fmt"

type State int

const (
	AWAITING_ROLL State = iota + 1
	GAME_OVER
)

func (s State) Name() string {
	switch s {
	case AWAITING_ROLL:
		return "AWAITING_ROLL"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Event is an input the shell forwards to a Session.
type Event int

const (
	ROLL_REQUESTED Event = iota + 1
	RESTART_REQUESTED
	QUIT_REQUESTED
)

func (e Event) Name() string {
	switch e {
	case ROLL_REQUESTED:
		return "ROLL_REQUESTED"
	case RESTART_REQUESTED:
		return "RESTART_REQUESTED"
	case QUIT_REQUESTED:
		return "QUIT_REQUESTED"
	default:
		return fmt.Sprintf("N/A(%d)", e)
	}
}

// Via tells which transition, if any, moved a piece after it landed.
type Via int

const (
	VIA_NONE Via = iota
	VIA_LADDER
	VIA_SNAKE
	VIA_LADDER_SNAKE
)

func (v Via) Name() string {
	switch v {
	case VIA_NONE:
		return "none"
	case VIA_LADDER:
		return "ladder"
	case VIA_SNAKE:
		return "snake"
	case VIA_LADDER_SNAKE:
		return "ladder+snake"
	default:
		return fmt.Sprintf("n/a:%d", v)
	}
}
