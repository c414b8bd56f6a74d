package screens

import "github.com/Nilesh-194/snake-game-mobile/internal/domain"

// clicker is a widget that tracks press state across frames.
type clicker interface {
	Update() bool
}

// updateAll updates every widget, then returns the index of the first one
// clicked this frame, or -1. Every widget must see every frame or a press
// that starts on one button and ends on another gets lost.
func updateAll(cs ...clicker) int {
	clicked := -1
	for i, c := range cs {
		if c.Update() && clicked < 0 {
			clicked = i
		}
	}
	return clicked
}

// steerer is an input source that may report a direction each frame.
type steerer interface {
	Update() domain.Direction
}

// steerAll updates every source and returns the first direction reported.
func steerAll(ss ...steerer) domain.Direction {
	var dir domain.Direction
	for _, s := range ss {
		if d := s.Update(); d != 0 && dir == 0 {
			dir = d
		}
	}
	return dir
}
