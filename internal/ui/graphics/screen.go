package graphics

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"
	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type Screen interface {
	Update() types.UIEvent
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}

type ScreenContext interface {
	Size() (int, int)
	Grid() domain.Grid
	// CellSize is the configured upper bound for one board cell in pixels.
	CellSize() int
}
