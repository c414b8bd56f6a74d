package graphics

import (
	"errors"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/schedule"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

type Options struct {
	Width    int
	Height   int
	CellSize int
	Title    string
	Log      zerolog.Logger
}

// Engine implements ebiten.Game. Every controller call and every tick happen
// inside Update, so the whole game runs on ebiten's update goroutine.
type Engine struct {
	width    int
	height   int
	cellSize int
	title    string

	game  types.Game
	clock *schedule.Clock
	time  schedule.TimeProvider
	log   zerolog.Logger

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]Screen

	lastErr string
}

func NewEngine(game types.Game, clock *schedule.Clock, tp schedule.TimeProvider, opts Options) *Engine {
	e := &Engine{
		width:         opts.Width,
		height:        opts.Height,
		cellSize:      opts.CellSize,
		title:         opts.Title,
		game:          game,
		clock:         clock,
		time:          tp,
		log:           opts.Log,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]Screen),
	}
	if e.width <= 0 {
		e.width = DefaultWidth
	}
	if e.height <= 0 {
		e.height = DefaultHeight
	}
	if e.title == "" {
		e.title = "Snake"
	}
	return e
}

func (e *Engine) RegisterScreens(menu, game, gameOver Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = game
	e.screenMap[types.ScreenGameOver] = gameOver
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (e *Engine) Update() error {
	if e.clock.Follow(e.time.Now()) {
		e.log.Debug().Msg("clock resynced after a long frame gap")
	}
	e.followState()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	e.pushState(screen)

	return e.handleEvent(screen.Update())
}

func (e *Engine) Draw(screen *ebiten.Image) {
	current := e.screenMap[e.currentScreen]
	if current == nil {
		return
	}
	e.pushState(current)
	current.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.width, e.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Grid() domain.Grid {
	return e.game.Grid()
}

func (e *Engine) CellSize() int {
	return e.cellSize
}

func (e *Engine) CurrentScreen() types.ScreenType {
	return e.currentScreen
}

// followState switches to the screen matching the controller state. The
// controller can change state on its own (a tick ending the game), so this
// runs every frame rather than only after UI events.
func (e *Engine) followState() {
	e.SetScreen(types.ScreenFor(e.game.State()))
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen == screen {
		return
	}
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnExit()
	}
	e.log.Debug().Stringer("from", e.currentScreen).Stringer("to", screen).Msg("screen change")
	e.currentScreen = screen
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}
}

func (e *Engine) pushState(screen Screen) {
	if u, ok := screen.(SnapshotUpdater); ok {
		u.SetSnapshot(e.game.Snapshot())
	}
	if u, ok := screen.(HighScoresUpdater); ok {
		u.SetHighScores(e.game.HighScores())
	}
	if s, ok := screen.(ErrorSetter); ok {
		s.SetError(e.lastErr)
	}
}

func (e *Engine) handleEvent(event types.UIEvent) error {
	if event.Type == types.UIEventNone {
		return nil
	}

	quit, err := types.Dispatch(e.game, event)
	if err != nil {
		e.log.Warn().Err(err).Msg("command failed")
		e.lastErr = err.Error()
		return nil
	}
	e.lastErr = ""
	if quit {
		e.log.Info().Msg("quit requested")
		return ebiten.Termination
	}

	e.followState()
	return nil
}

type SnapshotUpdater interface {
	SetSnapshot(snap app.Snapshot)
}

type HighScoresUpdater interface {
	SetHighScores(scores map[string]int)
}

type ErrorSetter interface {
	SetError(err string)
}
