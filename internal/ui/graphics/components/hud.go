package components

import (
	"fmt"

	"github.com/Nilesh-194/snake-game-mobile/internal/app"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD is the side panel with level, score and high score.
type HUD struct {
	X, Y          int
	Width, Height int
}

func NewHUD(x, y, width, height int) *HUD {
	return &HUD{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// HUDLines is the panel text, top to bottom.
func HUDLines(snap app.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Level: %s", snap.LevelTitle),
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High:  %d", snap.HighScore),
		fmt.Sprintf("Length: %d", len(snap.Snake)),
	}
	if snap.Paused() {
		lines = append(lines, "", "PAUSED")
	}
	return lines
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, theme types.Theme) {
	vector.DrawFilledRect(screen,
		float32(h.X), float32(h.Y),
		float32(h.Width), float32(h.Height),
		types.Darken(theme.Board, 0.8), false)

	vector.StrokeRect(screen,
		float32(h.X), float32(h.Y),
		float32(h.Width), float32(h.Height),
		1, theme.Grid, false)

	fonts := types.GetFonts()
	text.Draw(screen, "SNAKE", fonts.Normal, h.X+10, h.Y+20, theme.Accent)

	y := h.Y + 45
	for _, line := range HUDLines(snap) {
		if y > h.Y+h.Height-10 {
			break
		}
		c := types.ColorText
		if line == "PAUSED" {
			c = types.ColorTextHighlight
		}
		text.Draw(screen, line, fonts.Normal, h.X+10, y, c)
		y += 22
	}
}
