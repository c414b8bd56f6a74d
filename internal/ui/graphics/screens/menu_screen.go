package screens

import (
	"fmt"

	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/components"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/input"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type levelButton struct {
	level  domain.LevelConfig
	button *components.Button
}

type MenuScreen struct {
	ctx graphics.ScreenContext

	levels  []levelButton
	btnQuit *components.Button

	highScores map[string]int
	errorMsg   string
}

func NewMenuScreen(ctx graphics.ScreenContext) *MenuScreen {
	s := &MenuScreen{
		ctx:     ctx,
		btnQuit: components.NewButton(0, 0, 250, 50, "Quit"),
	}
	for _, lvl := range domain.Levels() {
		btn := components.NewButton(0, 0, 250, 50, lvl.Title())
		btn.Accent = types.ThemeFor(lvl.Theme).Accent
		s.levels = append(s.levels, levelButton{level: lvl, button: btn})
	}
	return s
}

func (s *MenuScreen) SetHighScores(scores map[string]int) {
	s.highScores = scores
}

func (s *MenuScreen) SetError(err string) {
	s.errorMsg = err
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	top := h/2 - 110

	for i, lb := range s.levels {
		lb.button.SetPosition(centerX-125, top+i*60)
	}
	s.btnQuit.SetPosition(centerX-125, top+len(s.levels)*60+20)

	buttons := make([]clicker, 0, len(s.levels)+1)
	for _, lb := range s.levels {
		buttons = append(buttons, lb.button)
	}
	buttons = append(buttons, s.btnQuit)
	clicked := updateAll(buttons...)

	if clicked >= 0 && clicked < len(s.levels) {
		return types.StartLevel(s.levels[clicked].level.Name)
	}
	if level := input.LevelShortcut(); level != "" {
		return types.StartLevel(level)
	}

	if clicked == len(s.levels) || input.IsEscapePressed() || input.IsQuitPressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "SNAKE"
	bounds := text.BoundString(fonts.Normal, title)
	x := (w - bounds.Dx()) / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, 100+dy, types.ColorTextHighlight)
		}
	}
	text.Draw(screen, title, fonts.Normal, x, 100, types.ColorTextHighlight)

	subtitle := "Choose a level"
	bounds = text.BoundString(fonts.Normal, subtitle)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, subtitle, fonts.Normal, x, 130, types.ColorTextDim)

	for i, lb := range s.levels {
		lb.button.Draw(screen)

		best := fmt.Sprintf("%d  best %d", i+1, s.highScores[lb.level.Name])
		bx := lb.button.X + lb.button.Width + 16
		by := lb.button.Y + (lb.button.Height+bounds.Dy())/2
		text.Draw(screen, best, fonts.Small, bx, by, types.ColorTextDim)
	}
	s.btnQuit.Draw(screen)

	if s.errorMsg != "" {
		bounds = text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, h-60, types.ColorError)
	}

	hint := "1/2/3 to pick a level  |  ESC to quit"
	bounds = text.BoundString(fonts.Small, hint)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, hint, fonts.Small, x, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {
	s.errorMsg = ""
}
