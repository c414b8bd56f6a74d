package types

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
)

type ScreenType int

const (
	ScreenMenu ScreenType = iota
	ScreenGame
	ScreenGameOver
)

func (s ScreenType) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenGame:
		return "game"
	case ScreenGameOver:
		return "game_over"
	}
	return "unknown"
}

// ScreenFor picks the screen that shows a controller state.
func ScreenFor(state app.State) ScreenType {
	switch {
	case state.InGame():
		return ScreenGame
	case state == app.StateEnded:
		return ScreenGameOver
	}
	return ScreenMenu
}

// Game is what a frontend needs from the controller: the commands it sends
// and the state it renders.
type Game interface {
	Commands
	State() app.State
	Snapshot() app.Snapshot
	HighScores() map[string]int
	Grid() domain.Grid
}
