package app

import "github.com/Nilesh-194/snake-game-mobile/internal/domain"

// Snapshot is a deep copy of everything a renderer needs.
type Snapshot struct {
	State      State
	Level      string
	LevelTitle string
	Theme      string
	Rows       int
	Cols       int

	Snake     []domain.CellIndex
	Food      []domain.CellIndex
	Direction domain.Direction

	Score        int
	HighScore    int
	NewHighScore bool
	EndCause     domain.CollisionCause
	Ticks        uint64
}

func (s Snapshot) Paused() bool {
	return s.State == StatePaused
}

func (s Snapshot) Head() domain.CellIndex {
	if len(s.Snake) == 0 {
		return 0
	}
	return s.Snake[0]
}

// CellKinds maps every occupied cell to what occupies it, for renderers that
// draw cell by cell.
func (s Snapshot) CellKinds() map[domain.CellIndex]CellKind {
	out := make(map[domain.CellIndex]CellKind, len(s.Snake)+len(s.Food))
	for _, c := range s.Food {
		out[c] = CellFood
	}
	for i, c := range s.Snake {
		if i == 0 {
			out[c] = CellHead
		} else {
			out[c] = CellBody
		}
	}
	return out
}

type CellKind int

const (
	CellEmpty CellKind = iota
	CellBody
	CellHead
	CellFood
)
