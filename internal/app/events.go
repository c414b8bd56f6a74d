package app

import "github.com/Nilesh-194/snake-game-mobile/internal/domain"

type EventType int

const (
	EventStarted EventType = iota
	EventTicked
	EventAte
	EventDirectionChanged
	EventPaused
	EventResumed
	EventEnded
	EventMenu
)

func (t EventType) String() string {
	switch t {
	case EventStarted:
		return "started"
	case EventTicked:
		return "ticked"
	case EventAte:
		return "ate"
	case EventDirectionChanged:
		return "direction_changed"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventEnded:
		return "ended"
	case EventMenu:
		return "menu"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Payload interface{}
}

type StartedPayload struct {
	Level string
}

type AtePayload struct {
	Cell  domain.CellIndex
	Score int
}

type DirectionPayload struct {
	Direction domain.Direction
}

type EndPayload struct {
	Level        string
	Score        int
	HighScore    int
	NewHighScore bool
	Cause        domain.CollisionCause
}

// Listener is notified synchronously on the loop goroutine. It must not call
// back into the Controller.
type Listener interface {
	OnEvent(Event)
}

type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
