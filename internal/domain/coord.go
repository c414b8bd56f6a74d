package domain

import "fmt"

// Position is a 1-indexed (row, col) grid coordinate.
type Position struct {
	Row int
	Col int
}

// CellIndex is the linear, 1-based encoding of a Position.
type CellIndex int

func (p Position) Add(other Position) Position {
	return Position{
		Row: p.Row + other.Row,
		Col: p.Col + other.Col,
	}
}

// Step returns the neighbouring position one cell away in dir.
// The result is not bounds-checked.
func (p Position) Step(dir Direction) Position {
	return p.Add(dir.Delta())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
