package app

import (
	"time"

	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"

	"github.com/rs/zerolog"
)

// Scheduler hands out cancellable repeating tasks. *schedule.Clock is the
// implementation used everywhere.
type Scheduler interface {
	Every(interval time.Duration, fn func()) *schedule.Task
}

// Controller owns the single live session, the high-score table and the tick
// task. It is not safe for concurrent use: commands and ticks must all arrive
// on the same goroutine.
type Controller struct {
	grid       domain.Grid
	scheduler  Scheduler
	rng        domain.Rand
	log        zerolog.Logger
	highScores *domain.HighScoreTable

	session   *Session
	listeners []Listener
}

type Option func(*Controller)

func WithRand(rng domain.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

func WithGrid(grid domain.Grid) Option {
	return func(c *Controller) {
		c.grid = grid
	}
}

func NewController(scheduler Scheduler, opts ...Option) *Controller {
	c := &Controller{
		grid:       domain.DefaultGrid(),
		scheduler:  scheduler,
		log:        zerolog.Nop(),
		highScores: domain.NewHighScoreTable(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = domain.NewRand(0)
	}
	return c
}

func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) Grid() domain.Grid {
	return c.grid
}

func (c *Controller) State() State {
	if c.session == nil {
		return StateIdle
	}
	return c.session.State
}

// Start replaces any current session with a fresh one on the named level.
func (c *Controller) Start(levelName string) error {
	level, err := domain.LookupLevel(levelName)
	if err != nil {
		c.log.Warn().Str("level", levelName).Msg("start rejected: unknown level")
		return err
	}

	c.session.stopTicking()

	s := newSession(c.grid, level)
	s.Food = domain.Refill(c.rng, c.grid, s.Snake, s.Food, level.FoodCount)
	c.session = s
	s.task = c.scheduler.Every(level.TickInterval, func() { c.tickSession(s) })

	c.log.Info().
		Str("level", level.Name).
		Dur("tick", level.TickInterval).
		Int("food", s.Food.Len()).
		Msg("session started")
	c.emit(Event{Type: EventStarted, Payload: StartedPayload{Level: level.Name}})
	return nil
}

// Restart starts over on the current level. It does nothing from the menu.
func (c *Controller) Restart() error {
	if c.session == nil {
		return nil
	}
	return c.Start(c.session.Level.Name)
}

func (c *Controller) ReturnToMenu() {
	if c.session == nil {
		return
	}
	c.session.stopTicking()
	level := c.session.Level.Name
	c.session = nil

	c.log.Info().Str("level", level).Msg("returned to menu")
	c.emit(Event{Type: EventMenu})
}

// SetDirection steers the snake. It is honoured while running or paused and
// ignored otherwise; a reversal onto the current direction's opposite is
// dropped.
func (c *Controller) SetDirection(dir domain.Direction) {
	s := c.session
	if s == nil || !s.State.InGame() {
		return
	}
	if !dir.Valid() || dir == s.Direction {
		return
	}
	if dir.IsOpposite(s.Direction) {
		c.log.Debug().Stringer("current", s.Direction).Stringer("requested", dir).Msg("reversal ignored")
		return
	}

	s.Direction = dir
	c.emit(Event{Type: EventDirectionChanged, Payload: DirectionPayload{Direction: dir}})
}

// TogglePause flips between running and paused. The tick task keeps its
// cadence; ticks are simply skipped while paused.
func (c *Controller) TogglePause() {
	s := c.session
	if s == nil {
		return
	}

	switch s.State {
	case StateRunning:
		s.State = StatePaused
		c.log.Debug().Uint64("ticks", s.Ticks).Msg("paused")
		c.emit(Event{Type: EventPaused})
	case StatePaused:
		s.State = StateRunning
		c.log.Debug().Uint64("ticks", s.Ticks).Msg("resumed")
		c.emit(Event{Type: EventResumed})
	}
}

// Tick advances the current session by one step. Scheduled ticks call it
// through the session they were created for.
func (c *Controller) Tick() {
	if c.session == nil {
		return
	}
	c.tickSession(c.session)
}

func (c *Controller) tickSession(s *Session) {
	if s != c.session || s.State != StateRunning {
		return
	}

	snake, outcome := domain.Advance(c.grid, s.Snake, s.Food, s.Direction)
	s.Ticks++

	switch outcome.Kind {
	case domain.OutcomeCollided:
		c.end(s, outcome.Cause)
		return

	case domain.OutcomeAte:
		s.Snake = snake
		s.Food, _ = s.Food.Remove(outcome.Cell)
		s.Score += FoodReward
		s.Food = domain.Refill(c.rng, c.grid, s.Snake, s.Food, s.Level.FoodCount)
		c.log.Debug().Int("score", s.Score).Int("length", s.Snake.Len()).Msg("food eaten")
		c.emit(Event{Type: EventAte, Payload: AtePayload{Cell: outcome.Cell, Score: s.Score}})

	case domain.OutcomeContinue:
		s.Snake = snake
	}

	c.emit(Event{Type: EventTicked})
}

func (c *Controller) end(s *Session, cause domain.CollisionCause) {
	s.stopTicking()
	s.EndCause = cause
	s.NewHighScore = c.highScores.Record(s.Level.Name, s.Score)
	s.State = StateEnded

	c.log.Info().
		Str("level", s.Level.Name).
		Int("score", s.Score).
		Stringer("cause", cause).
		Bool("new_high_score", s.NewHighScore).
		Msg("game over")
	c.emit(Event{Type: EventEnded, Payload: EndPayload{
		Level:        s.Level.Name,
		Score:        s.Score,
		HighScore:    c.highScores.Get(s.Level.Name),
		NewHighScore: s.NewHighScore,
		Cause:        cause,
	}})
}

func (c *Controller) HighScores() map[string]int {
	return c.highScores.Copy()
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State: StateIdle,
		Rows:  c.grid.Rows,
		Cols:  c.grid.Cols,
	}

	s := c.session
	if s == nil {
		return snap
	}

	snap.State = s.State
	snap.Level = s.Level.Name
	snap.LevelTitle = s.Level.Title()
	snap.Theme = s.Level.Theme
	snap.Snake = s.Snake.Copy().Cells
	snap.Food = s.Food.Copy().Cells
	snap.Direction = s.Direction
	snap.Score = s.Score
	snap.HighScore = c.highScores.Get(s.Level.Name)
	snap.NewHighScore = s.NewHighScore
	snap.EndCause = s.EndCause
	snap.Ticks = s.Ticks
	return snap
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l.OnEvent(e)
	}
}
