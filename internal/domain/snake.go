package domain

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Cells []CellIndex
}

func NewSnake(cells ...CellIndex) Snake {
	s := Snake{Cells: make([]CellIndex, len(cells))}
	copy(s.Cells, cells)
	return s
}

// NewHorizontalSnake lays out length cells leftwards from head: head, head-1, ...
func NewHorizontalSnake(grid Grid, head Position, length int) Snake {
	start := grid.MustIndex(head)
	cells := make([]CellIndex, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, start-CellIndex(i))
	}
	return Snake{Cells: cells}
}

func (s Snake) Head() CellIndex {
	if len(s.Cells) == 0 {
		return 0
	}
	return s.Cells[0]
}

func (s Snake) Len() int {
	return len(s.Cells)
}

func (s Snake) Contains(c CellIndex) bool {
	for _, cell := range s.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

func (s Snake) Copy() Snake {
	return NewSnake(s.Cells...)
}
