package app

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"
)

type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	}
	return "unknown"
}

// InGame reports whether a session is on the board, paused or not.
func (s State) InGame() bool {
	return s == StateRunning || s == StatePaused
}

const (
	FoodReward    = 10
	InitialLength = 3
)

var (
	InitialHead      = domain.Position{Row: 20, Col: 3}
	InitialDirection = domain.DirectionRight
)

// Session is one playthrough. Only the Controller touches it.
type Session struct {
	State        State
	Level        domain.LevelConfig
	Score        int
	Snake        domain.Snake
	Food         domain.FoodSet
	Direction    domain.Direction
	Ticks        uint64
	NewHighScore bool
	EndCause     domain.CollisionCause

	task *schedule.Task
}

func newSession(grid domain.Grid, level domain.LevelConfig) *Session {
	return &Session{
		State:     StateRunning,
		Level:     level,
		Snake:     domain.NewHorizontalSnake(grid, InitialHead, InitialLength),
		Food:      domain.FoodSet{},
		Direction: InitialDirection,
	}
}

func (s *Session) stopTicking() {
	if s != nil && s.task != nil {
		s.task.Cancel()
	}
}
