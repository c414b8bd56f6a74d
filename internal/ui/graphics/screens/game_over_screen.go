package screens

import (
	"fmt"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/components"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/graphics/input"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GameOverScreen struct {
	ctx graphics.ScreenContext

	board      *components.BoardRenderer
	btnRestart *components.Button
	btnMenu    *components.Button

	snap app.Snapshot
}

func NewGameOverScreen(ctx graphics.ScreenContext) *GameOverScreen {
	return &GameOverScreen{
		ctx:        ctx,
		board:      components.NewBoardRenderer(ctx.CellSize()),
		btnRestart: components.NewButton(0, 0, 200, 50, "Restart"),
		btnMenu:    components.NewButton(0, 0, 200, 50, "Menu"),
	}
}

func (s *GameOverScreen) SetSnapshot(snap app.Snapshot) {
	s.snap = snap
}

// SummaryLines is the text block shown over the final board.
func SummaryLines(snap app.Snapshot) []string {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Level: %s", snap.LevelTitle),
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Best:  %d", snap.HighScore),
	}
	if snap.NewHighScore {
		lines = append(lines, "New high score!")
	}
	return lines
}

func (s *GameOverScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	s.btnRestart.SetPosition(w-250, h/2)
	s.btnMenu.SetPosition(w-250, h/2+70)

	clicked := updateAll(s.btnRestart, s.btnMenu)

	if clicked == 0 || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventRestart}
	}
	if clicked == 1 || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	grid := s.ctx.Grid()
	theme := types.ThemeFor(s.snap.Theme)

	s.board.CalculateLayout(w, h, grid, s.ctx.CellSize())
	s.board.DrawBoard(screen, grid, theme)
	s.board.DrawCells(screen, grid, s.snap.CellKinds(), theme, true)

	fonts := types.GetFonts()
	y := 80
	for i, line := range SummaryLines(s.snap) {
		c := types.ColorText
		switch {
		case i == 0:
			c = types.ColorError
		case line == "New high score!":
			c = types.ColorSuccess
		}
		text.Draw(screen, line, fonts.Normal, w-250, y, c)
		y += 24
	}

	s.btnRestart.Draw(screen)
	s.btnMenu.Draw(screen)

	hint := "Enter to restart  |  ESC for menu"
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {}
