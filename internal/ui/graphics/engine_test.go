package graphics

import (
	"errors"
	"testing"
	"time"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

// fakeScreen records lifecycle calls and returns a queued event from Update.
type fakeScreen struct {
	next    types.UIEvent
	entered int
	exited  int
	snap    app.Snapshot
	err     string
}

func (s *fakeScreen) Update() types.UIEvent {
	ev := s.next
	s.next = types.UIEvent{}
	return ev
}

func (s *fakeScreen) Draw(*ebiten.Image) {}

func (s *fakeScreen) OnEnter() { s.entered++ }

func (s *fakeScreen) OnExit() { s.exited++ }

func (s *fakeScreen) SetSnapshot(snap app.Snapshot) { s.snap = snap }

func (s *fakeScreen) SetError(err string) { s.err = err }

func newTestEngine() (*Engine, *app.Controller, *fixedTime, [3]*fakeScreen) {
	tp := &fixedTime{now: epoch}
	clock := schedule.NewClock(epoch)
	ctrl := app.NewController(clock, app.WithRand(domain.NewRand(3)))
	e := NewEngine(ctrl, clock, tp, Options{Log: zerolog.Nop()})

	var s [3]*fakeScreen
	for i := range s {
		s[i] = &fakeScreen{}
	}
	e.RegisterScreens(s[0], s[1], s[2])
	return e, ctrl, tp, s
}

func TestEngineDefaults(t *testing.T) {
	e, _, _, _ := newTestEngine()
	if w, h := e.Size(); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Expected default size, got %dx%d", w, h)
	}
	if e.CurrentScreen() != types.ScreenMenu {
		t.Errorf("Expected menu first, got %v", e.CurrentScreen())
	}
	if e.Grid() != domain.DefaultGrid() {
		t.Errorf("Expected the controller grid, got %+v", e.Grid())
	}
}

func TestEngineFollowsControllerState(t *testing.T) {
	e, ctrl, tp, s := newTestEngine()
	menu, game, over := s[0], s[1], s[2]

	menu.next = types.StartLevel(domain.LevelHard)
	if err := e.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if e.CurrentScreen() != types.ScreenGame {
		t.Fatalf("Expected game screen after start, got %v", e.CurrentScreen())
	}
	if menu.exited != 1 || game.entered != 1 {
		t.Errorf("Expected one menu exit and one game enter, got %d/%d", menu.exited, game.entered)
	}

	// Steer into the top wall: the next ticks end the game without any UI event.
	ctrl.SetDirection(domain.DirectionUp)
	for i := 0; i < 100 && ctrl.State() == app.StateRunning; i++ {
		tp.now = tp.now.Add(100 * time.Millisecond)
		if err := e.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	if e.CurrentScreen() != types.ScreenGameOver {
		t.Fatalf("Expected game over screen, got %v", e.CurrentScreen())
	}
	if over.entered != 1 {
		t.Errorf("Expected game over screen entered once, got %d", over.entered)
	}
	if over.snap.State != app.StateEnded {
		t.Errorf("Expected ended snapshot pushed to the screen, got %v", over.snap.State)
	}

	over.next = types.UIEvent{Type: types.UIEventShowMenu}
	if err := e.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if e.CurrentScreen() != types.ScreenMenu {
		t.Errorf("Expected menu, got %v", e.CurrentScreen())
	}
}

func TestEngineSkipsStartupDelay(t *testing.T) {
	e, ctrl, tp, _ := newTestEngine()
	if err := ctrl.Start(domain.LevelHard); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// The window takes 800ms to appear; the first frame must not move the snake.
	tp.now = epoch.Add(800 * time.Millisecond)
	if err := e.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if ticks := ctrl.Snapshot().Ticks; ticks != 0 {
		t.Fatalf("Expected no ticks on the first frame, got %d", ticks)
	}

	tp.now = tp.now.Add(60 * time.Millisecond)
	if err := e.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if ticks := ctrl.Snapshot().Ticks; ticks != 1 {
		t.Errorf("Expected one tick one interval later, got %d", ticks)
	}
}

func TestEngineReportsCommandErrors(t *testing.T) {
	e, ctrl, _, s := newTestEngine()

	s[0].next = types.StartLevel("nightmare")
	if err := e.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if ctrl.State() != app.StateIdle {
		t.Errorf("Expected idle, got %v", ctrl.State())
	}

	e.pushState(s[0])
	if s[0].err == "" {
		t.Error("Expected the start error to reach the menu")
	}
}

func TestEngineQuit(t *testing.T) {
	e, _, _, s := newTestEngine()
	s[0].next = types.UIEvent{Type: types.UIEventQuit}
	if err := e.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}
