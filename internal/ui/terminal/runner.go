package terminal

import (
	"context"
	"time"

	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FrameInterval is how often the loop advances the clock and redraws.
const FrameInterval = 16 * time.Millisecond

type Runner struct {
	screen tcell.Screen
	game   types.Game
	clock  *schedule.Clock
	time   schedule.TimeProvider
	view   *View
	log    zerolog.Logger
}

func NewRunner(screen tcell.Screen, game types.Game, clock *schedule.Clock, tp schedule.TimeProvider, log zerolog.Logger) *Runner {
	return &Runner{
		screen: screen,
		game:   game,
		clock:  clock,
		time:   tp,
		view:   NewView(screen, game.Grid()),
		log:    log,
	}
}

// Run owns the screen until ctx is cancelled or the player quits, and
// finalizes it before returning. Input is pumped on its own goroutine; the
// controller is only ever touched by the loop goroutine.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 100)

	g.Go(func() error {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer r.screen.Fini()
		defer cancel()
		return r.loop(ctx, events)
	})

	return g.Wait()
}

func (r *Runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	r.frame()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if r.HandleEvent(ev) {
				r.log.Info().Msg("quit requested")
				return nil
			}
			r.frame()

		case <-ticker.C:
			r.frame()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		quit, err := types.Dispatch(r.game, Translate(ev, r.game.State()))
		if err != nil {
			r.log.Warn().Err(err).Msg("command failed")
			r.view.SetError(err.Error())
		} else {
			r.view.SetError("")
		}
		return quit

	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Runner) frame() {
	if r.clock.Follow(r.time.Now()) {
		r.log.Debug().Msg("clock resynced after a long frame gap")
	}
	r.view.Draw(r.game.Snapshot(), r.game.HighScores())
}
