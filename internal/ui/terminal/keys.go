// Package terminal is a tcell frontend for the snake controller.
package terminal

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/gdamore/tcell/v2"
)

var arrowKeys = map[tcell.Key]domain.Direction{
	tcell.KeyUp:    domain.DirectionUp,
	tcell.KeyDown:  domain.DirectionDown,
	tcell.KeyLeft:  domain.DirectionLeft,
	tcell.KeyRight: domain.DirectionRight,
}

var steerRunes = map[rune]domain.Direction{
	'w': domain.DirectionUp,
	's': domain.DirectionDown,
	'a': domain.DirectionLeft,
	'd': domain.DirectionRight,
	'k': domain.DirectionUp,
	'j': domain.DirectionDown,
	'h': domain.DirectionLeft,
	'l': domain.DirectionRight,
}

var levelRunes = map[rune]string{
	'1': domain.LevelEasy,
	'2': domain.LevelMedium,
	'3': domain.LevelHard,
	'e': domain.LevelEasy,
	'm': domain.LevelMedium,
	'h': domain.LevelHard,
}

// Translate maps a key press to a UI event for the screen the state shows.
func Translate(ev *tcell.EventKey, state app.State) types.UIEvent {
	none := types.UIEvent{Type: types.UIEventNone}

	if ev.Key() == tcell.KeyCtrlC {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	r := ev.Rune()
	if ev.Key() == tcell.KeyRune && r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}

	switch types.ScreenFor(state) {
	case types.ScreenMenu:
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && r == 'q') {
			return types.UIEvent{Type: types.UIEventQuit}
		}
		if ev.Key() == tcell.KeyRune {
			if level, ok := levelRunes[r]; ok {
				return types.StartLevel(level)
			}
		}

	case types.ScreenGame:
		if dir, ok := arrowKeys[ev.Key()]; ok {
			return types.Steer(dir)
		}
		if ev.Key() == tcell.KeyEscape {
			return types.UIEvent{Type: types.UIEventShowMenu}
		}
		if ev.Key() != tcell.KeyRune {
			return none
		}
		if dir, ok := steerRunes[r]; ok {
			return types.Steer(dir)
		}
		if r == ' ' || r == 'p' {
			return types.UIEvent{Type: types.UIEventTogglePause}
		}

	case types.ScreenGameOver:
		switch {
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && r == 'r':
			return types.UIEvent{Type: types.UIEventRestart}
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && r == 'm':
			return types.UIEvent{Type: types.UIEventShowMenu}
		case ev.Key() == tcell.KeyRune && r == 'q':
			return types.UIEvent{Type: types.UIEventQuit}
		}
	}

	return none
}
