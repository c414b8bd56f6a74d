package domain

import (
	"errors"
	"fmt"
)

const (
	DefaultRows = 40
	DefaultCols = 40
)

var ErrOutOfBounds = errors.New("position out of bounds")

// Grid is the fixed-size board. It carries no state beyond its dimensions.
type Grid struct {
	Rows int
	Cols int
}

func NewGrid(rows, cols int) Grid {
	return Grid{
		Rows: rows,
		Cols: cols,
	}
}

func DefaultGrid() Grid {
	return NewGrid(DefaultRows, DefaultCols)
}

// Cells is the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

func (g Grid) Contains(p Position) bool {
	return p.Row >= 1 && p.Row <= g.Rows && p.Col >= 1 && p.Col <= g.Cols
}

func (g Grid) ContainsIndex(i CellIndex) bool {
	return i >= 1 && int(i) <= g.Cells()
}

// ToIndex encodes p as (row-1)*cols + col.
func (g Grid) ToIndex(p Position) (CellIndex, error) {
	if !g.Contains(p) {
		return 0, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, p, g.Rows, g.Cols)
	}
	return CellIndex((p.Row-1)*g.Cols + p.Col), nil
}

func (g Grid) ToPosition(i CellIndex) (Position, error) {
	if !g.ContainsIndex(i) {
		return Position{}, fmt.Errorf("%w: index %d on %dx%d grid", ErrOutOfBounds, i, g.Rows, g.Cols)
	}
	row := (int(i)-1)/g.Cols + 1
	col := int(i) - (row-1)*g.Cols
	return Position{Row: row, Col: col}, nil
}

// MustIndex is ToIndex for positions already known to be on the board.
func (g Grid) MustIndex(p Position) CellIndex {
	i, err := g.ToIndex(p)
	if err != nil {
		panic(err)
	}
	return i
}

func (g Grid) MustPosition(i CellIndex) Position {
	p, err := g.ToPosition(i)
	if err != nil {
		panic(err)
	}
	return p
}
