package types

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartLevel
	UIEventSteer
	UIEventTogglePause
	UIEventRestart
	UIEventShowMenu
	UIEventQuit
)

type StartLevelData struct {
	Level string
}

type SteerData struct {
	Direction domain.Direction
}

func StartLevel(name string) UIEvent {
	return UIEvent{Type: UIEventStartLevel, Payload: StartLevelData{Level: name}}
}

func Steer(dir domain.Direction) UIEvent {
	return UIEvent{Type: UIEventSteer, Payload: SteerData{Direction: dir}}
}

// Commands is the part of the controller a frontend drives.
type Commands interface {
	Start(level string) error
	Restart() error
	ReturnToMenu()
	SetDirection(dir domain.Direction)
	TogglePause()
}

// Dispatch applies a UI event to the controller. It reports quit for
// UIEventQuit; the caller owns shutdown.
func Dispatch(c Commands, ev UIEvent) (quit bool, err error) {
	switch ev.Type {
	case UIEventStartLevel:
		data, ok := ev.Payload.(StartLevelData)
		if !ok {
			return false, nil
		}
		return false, c.Start(data.Level)

	case UIEventSteer:
		if data, ok := ev.Payload.(SteerData); ok {
			c.SetDirection(data.Direction)
		}

	case UIEventTogglePause:
		c.TogglePause()

	case UIEventRestart:
		return false, c.Restart()

	case UIEventShowMenu:
		c.ReturnToMenu()

	case UIEventQuit:
		return true, nil
	}
	return false, nil
}
