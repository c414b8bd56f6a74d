package terminal

import (
	"fmt"
	"image/color"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/gdamore/tcell/v2"
)

// Each board cell is two terminal columns wide so the board looks square.
const cellWidth = 2

const (
	boardTop  = 2
	boardLeft = 1

	// panelWidth is the space right of the board for the game-over text.
	panelWidth = 20
)

const (
	runeSnake = '█'
	runeFood  = '●'
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	styleText  = tcell.StyleDefault.Foreground(rgb(types.ColorText))
	styleDim   = tcell.StyleDefault.Foreground(rgb(types.ColorTextDim))
	styleHigh  = tcell.StyleDefault.Foreground(rgb(types.ColorTextHighlight))
	styleError = tcell.StyleDefault.Foreground(rgb(types.ColorError))
	styleOK    = tcell.StyleDefault.Foreground(rgb(types.ColorSuccess))
)

// View draws controller snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
	grid   domain.Grid

	errorMsg string
}

func NewView(screen tcell.Screen, grid domain.Grid) *View {
	return &View{screen: screen, grid: grid}
}

func (v *View) SetError(msg string) {
	v.errorMsg = msg
}

func (v *View) Draw(snap app.Snapshot, highScores map[string]int) {
	v.screen.Clear()

	screen := types.ScreenFor(snap.State)
	w, h := v.screen.Size()
	minW, minH := v.MinSize()

	switch {
	case screen == types.ScreenMenu:
		v.drawMenu(highScores)
	case w < minW || h < minH:
		v.drawTooSmall(w, h)
	case screen == types.ScreenGame:
		v.drawGame(snap)
	case screen == types.ScreenGameOver:
		v.drawGameOver(snap)
	}

	if v.errorMsg != "" {
		_, h := v.screen.Size()
		v.text(boardLeft, h-2, v.errorMsg, styleError)
	}

	v.screen.Show()
}

// MinSize is the terminal size the board views need.
func (v *View) MinSize() (w, h int) {
	return boardLeft + v.grid.Cols*cellWidth + 2 + panelWidth, boardTop + v.grid.Rows + 3
}

func (v *View) drawTooSmall(w, h int) {
	minW, minH := v.MinSize()
	v.text(0, 0, "Terminal too small", styleError)
	v.text(0, 1, fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, w, h), styleText)
	v.text(0, 2, "Esc for menu, Ctrl-C to quit", styleDim)
}

func (v *View) drawMenu(highScores map[string]int) {
	v.text(boardLeft, 1, "SNAKE", styleHigh)
	v.text(boardLeft, 3, "Choose a level:", styleDim)

	y := 5
	for i, lvl := range domain.Levels() {
		theme := types.ThemeFor(lvl.Theme)
		line := fmt.Sprintf("%d) %-6s  %d food, %3dms   best %d",
			i+1, lvl.Title(), lvl.FoodCount, lvl.TickInterval.Milliseconds(), highScores[lvl.Name])
		v.text(boardLeft, y, line, tcell.StyleDefault.Foreground(rgb(theme.Accent)))
		y++
	}

	v.text(boardLeft, y+1, "1/2/3 to start  |  q or Esc to quit", styleDim)
}

func (v *View) drawGame(snap app.Snapshot) {
	theme := types.ThemeFor(snap.Theme)
	v.drawHUD(snap, theme)
	v.drawBoard(snap, theme, snap.Paused())

	if snap.Paused() {
		msg := " PAUSED - Space to resume "
		x := boardLeft + (v.grid.Cols*cellWidth+2-len(msg))/2
		v.text(x, boardTop+v.grid.Rows/2, msg, styleHigh.Reverse(true))
	}

	v.text(boardLeft, boardTop+v.grid.Rows+2,
		"arrows/WASD move  |  Space pause  |  Esc menu  |  Ctrl-C quit", styleDim)
}

func (v *View) drawGameOver(snap app.Snapshot) {
	theme := types.ThemeFor(snap.Theme)
	v.drawHUD(snap, theme)
	v.drawBoard(snap, theme, true)

	x := boardLeft + v.grid.Cols*cellWidth + 4
	y := boardTop + 1
	v.text(x, y, "GAME OVER", styleError)
	v.text(x, y+2, fmt.Sprintf("Score: %d", snap.Score), styleText)
	v.text(x, y+3, fmt.Sprintf("Best:  %d", snap.HighScore), styleText)
	if snap.NewHighScore {
		v.text(x, y+5, "New high score!", styleOK)
	}
	v.text(x, y+7, "Enter/r restart", styleDim)
	v.text(x, y+8, "Esc/m menu", styleDim)
	v.text(x, y+9, "q quit", styleDim)
}

func (v *View) drawHUD(snap app.Snapshot, theme types.Theme) {
	hud := fmt.Sprintf("%s  Score: %d  High: %d  Length: %d",
		snap.LevelTitle, snap.Score, snap.HighScore, len(snap.Snake))
	v.text(boardLeft, 0, hud, tcell.StyleDefault.Foreground(rgb(theme.Accent)))
}

func (v *View) drawBoard(snap app.Snapshot, theme types.Theme, dimmed bool) {
	border := tcell.StyleDefault.Foreground(rgb(theme.Accent))
	board := tcell.StyleDefault.Background(rgb(theme.Board))

	width := v.grid.Cols*cellWidth + 2
	height := v.grid.Rows + 2
	for x := 0; x < width; x++ {
		v.screen.SetContent(boardLeft+x, boardTop-1, '─', nil, border)
		v.screen.SetContent(boardLeft+x, boardTop-1+height-1, '─', nil, border)
	}
	for y := 0; y < height; y++ {
		v.screen.SetContent(boardLeft, boardTop-1+y, '│', nil, border)
		v.screen.SetContent(boardLeft+width-1, boardTop-1+y, '│', nil, border)
	}
	v.screen.SetContent(boardLeft, boardTop-1, '┌', nil, border)
	v.screen.SetContent(boardLeft+width-1, boardTop-1, '┐', nil, border)
	v.screen.SetContent(boardLeft, boardTop+height-2, '└', nil, border)
	v.screen.SetContent(boardLeft+width-1, boardTop+height-2, '┘', nil, border)

	kinds := snap.CellKinds()
	for row := 1; row <= v.grid.Rows; row++ {
		for col := 1; col <= v.grid.Cols; col++ {
			p := domain.Position{Row: row, Col: col}

			switch kind := kinds[v.grid.MustIndex(p)]; kind {
			case app.CellEmpty:
				v.cell(p, ' ', board)
			case app.CellFood:
				v.cell(p, runeFood, board.Foreground(rgb(theme.Food)))
			case app.CellBody, app.CellHead:
				c := theme.Snake
				if kind == app.CellHead {
					c = theme.Head
				}
				if dimmed {
					c = types.Darken(c, 0.5)
				}
				v.cell(p, runeSnake, board.Foreground(rgb(c)))
			}
		}
	}
}

// CellOrigin is the terminal column and row of a board position's left half.
func CellOrigin(p domain.Position) (x, y int) {
	return boardLeft + 1 + (p.Col-1)*cellWidth, boardTop + p.Row - 1
}

func (v *View) cell(p domain.Position, r rune, style tcell.Style) {
	x, y := CellOrigin(p)
	for i := 0; i < cellWidth; i++ {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
