package components

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	MinCellSize = 4
	MaxCellSize = 30
)

// BoardRenderer draws the grid, food and snake inside a rectangle it
// computes from the window size.
type BoardRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int

	// Reserved space around the board for the HUD and controls.
	ReserveRight  int
	ReserveTop    int
	ReserveBottom int
}

func NewBoardRenderer(cellSize int) *BoardRenderer {
	return &BoardRenderer{
		CellSize:      cellSize,
		OffsetX:       20,
		OffsetY:       20,
		ReserveRight:  260,
		ReserveTop:    50,
		ReserveBottom: 30,
	}
}

// CalculateLayout fits a rows x cols board in the space left after the
// reserves, centered, never wider than maxCell pixels per cell.
func (br *BoardRenderer) CalculateLayout(screenWidth, screenHeight int, grid domain.Grid, maxCell int) {
	if grid.Rows <= 0 || grid.Cols <= 0 {
		return
	}

	availableWidth := screenWidth - br.ReserveRight - 20
	availableHeight := screenHeight - br.ReserveTop - br.ReserveBottom

	cellW := availableWidth / grid.Cols
	cellH := availableHeight / grid.Rows

	br.CellSize = cellW
	if cellH < cellW {
		br.CellSize = cellH
	}

	if maxCell <= 0 || maxCell > MaxCellSize {
		maxCell = MaxCellSize
	}
	if br.CellSize > maxCell {
		br.CellSize = maxCell
	}
	if br.CellSize < MinCellSize {
		br.CellSize = MinCellSize
	}

	boardWidth := br.CellSize * grid.Cols
	boardHeight := br.CellSize * grid.Rows
	br.OffsetX = (availableWidth-boardWidth)/2 + 20
	if br.OffsetX < 0 {
		br.OffsetX = 0
	}
	br.OffsetY = (availableHeight-boardHeight)/2 + br.ReserveTop
	if br.OffsetY < 0 {
		br.OffsetY = 0
	}
}

// CellRect is the pixel rectangle of a 1-indexed position.
func (br *BoardRenderer) CellRect(p domain.Position) (x, y, size float32) {
	x = float32(br.OffsetX + (p.Col-1)*br.CellSize)
	y = float32(br.OffsetY + (p.Row-1)*br.CellSize)
	return x, y, float32(br.CellSize)
}

func (br *BoardRenderer) BoardSize(grid domain.Grid) (w, h int) {
	return grid.Cols * br.CellSize, grid.Rows * br.CellSize
}

func (br *BoardRenderer) DrawBoard(screen *ebiten.Image, grid domain.Grid, theme types.Theme) {
	bw, bh := br.BoardSize(grid)
	w, h := float32(bw), float32(bh)

	vector.DrawFilledRect(screen,
		float32(br.OffsetX), float32(br.OffsetY),
		w, h,
		theme.Board, false)

	if br.CellSize >= 8 {
		for c := 0; c <= grid.Cols; c++ {
			x1 := float32(br.OffsetX + c*br.CellSize)
			vector.StrokeLine(screen,
				x1, float32(br.OffsetY),
				x1, float32(br.OffsetY)+h,
				1, theme.Grid, false)
		}
		for r := 0; r <= grid.Rows; r++ {
			y1 := float32(br.OffsetY + r*br.CellSize)
			vector.StrokeLine(screen,
				float32(br.OffsetX), y1,
				float32(br.OffsetX)+w, y1,
				1, theme.Grid, false)
		}
	}

	vector.StrokeRect(screen,
		float32(br.OffsetX), float32(br.OffsetY),
		w, h,
		2, theme.Accent, false)
}

// DrawCells draws every occupied cell. dimmed darkens the snake, for the
// paused and game-over views.
func (br *BoardRenderer) DrawCells(screen *ebiten.Image, grid domain.Grid, kinds map[domain.CellIndex]app.CellKind, theme types.Theme, dimmed bool) {
	padding := float32(br.CellSize) / 4

	for cell, kind := range kinds {
		x, y, size := br.CellRect(grid.MustPosition(cell))

		switch kind {
		case app.CellFood:
			vector.DrawFilledCircle(screen,
				x+size/2, y+size/2, size/2-padding/2,
				theme.Food, true)

		case app.CellBody, app.CellHead:
			cellColor := theme.Snake
			if kind == app.CellHead {
				cellColor = theme.Head
			}
			if dimmed {
				cellColor = types.Darken(cellColor, 0.5)
			}

			vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, cellColor, false)

			if kind == app.CellHead {
				vector.StrokeRect(screen, x, y, size, size, 2, theme.Accent, false)
			}
		}
	}
}
