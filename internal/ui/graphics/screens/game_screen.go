package screens

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/components"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/input"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudWidth  = 230
	dpadSize  = 44
	panelLeft = 250
)

type GameScreen struct {
	ctx graphics.ScreenContext

	board    *components.BoardRenderer
	hud      *components.HUD
	dpad     *components.DPad
	keyboard *input.KeyboardHandler
	swipe    *input.SwipeHandler

	btnPause *components.Button
	btnBack  *components.Button

	snap app.Snapshot
}

func NewGameScreen(ctx graphics.ScreenContext) *GameScreen {
	s := &GameScreen{
		ctx:      ctx,
		board:    components.NewBoardRenderer(ctx.CellSize()),
		hud:      components.NewHUD(0, 0, hudWidth, 160),
		dpad:     components.NewDPad(dpadSize),
		keyboard: input.NewKeyboardHandler(),
		swipe:    input.NewSwipeHandler(),
		btnPause: components.NewButton(0, 0, 105, 40, "Pause"),
		btnBack:  components.NewButton(0, 0, 105, 40, "Menu"),
	}
	s.swipe.Exclude = func(x, y int) bool {
		return s.dpad.Contains(x, y) || s.btnPause.Contains(x, y) || s.btnBack.Contains(x, y)
	}
	return s
}

func (s *GameScreen) SetSnapshot(snap app.Snapshot) {
	s.snap = snap
}

func (s *GameScreen) layout() {
	w, h := s.ctx.Size()
	s.board.CalculateLayout(w, h, s.ctx.Grid(), s.ctx.CellSize())

	px := w - panelLeft
	s.hud.X, s.hud.Y = px, 60
	s.btnPause.SetPosition(px, s.hud.Y+s.hud.Height+16)
	s.btnBack.SetPosition(px+s.btnPause.Width+20, s.hud.Y+s.hud.Height+16)

	ext := s.dpad.Extent()
	s.dpad.SetPosition(px+hudWidth/2, h-ext/2-40)
}

func (s *GameScreen) Update() types.UIEvent {
	s.layout()

	if s.snap.Paused() {
		s.btnPause.Text = "Resume"
	} else {
		s.btnPause.Text = "Pause"
	}

	clicked := updateAll(s.btnBack, s.btnPause)
	dir := steerAll(s.keyboard, s.dpad, s.swipe)

	if input.IsEscapePressed() || clicked == 0 {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}
	if input.IsPausePressed() || clicked == 1 {
		return types.UIEvent{Type: types.UIEventTogglePause}
	}
	if dir != 0 {
		return types.Steer(dir)
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)
	s.layout()

	grid := s.ctx.Grid()
	theme := types.ThemeFor(s.snap.Theme)

	s.board.DrawBoard(screen, grid, theme)
	s.board.DrawCells(screen, grid, s.snap.CellKinds(), theme, s.snap.Paused())

	s.hud.Draw(screen, s.snap, theme)
	s.btnPause.Draw(screen)
	s.btnBack.Draw(screen)
	s.dpad.Draw(screen)

	if s.snap.Paused() {
		s.drawPaused(screen)
	}
	s.drawFooter(screen)
}

func (s *GameScreen) drawPaused(screen *ebiten.Image) {
	fonts := types.GetFonts()
	bw, bh := s.board.BoardSize(s.ctx.Grid())

	msg := "PAUSED - press Space to resume"
	bounds := text.BoundString(fonts.Normal, msg)
	x := s.board.OffsetX + (bw-bounds.Dx())/2
	y := s.board.OffsetY + bh/2

	vector.DrawFilledRect(screen,
		float32(x-10), float32(y-bounds.Dy()-8),
		float32(bounds.Dx()+20), float32(bounds.Dy()+16),
		types.ColorBackground, false)
	text.Draw(screen, msg, fonts.Normal, x, y, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image) {
	fonts := types.GetFonts()
	_, h := s.ctx.Size()

	hint := "W/A/S/D or Arrows to move  |  Space to pause  |  ESC for menu"
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)
}

func (s *GameScreen) OnEnter() {
	s.swipe.Reset()
}

func (s *GameScreen) OnExit() {
	s.swipe.Reset()
}
