package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/zucenko/ladders/engine"
)

// pollEvents turns this tick's key presses into engine events. Rolls are
// not emitted once the game is over; ESC only quits from the winner card.
func pollEvents(over bool) []engine.Event {
	events := make([]engine.Event, 0, 1)
	if !over {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
			len(inpututil.JustPressedTouchIDs()) > 0 {
			events = append(events, engine.ROLL_REQUESTED)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, engine.RESTART_REQUESTED)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || over && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, engine.QUIT_REQUESTED)
	}
	return events
}
