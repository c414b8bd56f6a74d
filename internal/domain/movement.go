package domain

type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeAte
	OutcomeCollided
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	}
	return "unknown"
}

type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseWall
	CauseSelf
)

func (c CollisionCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "none"
}

// Outcome describes what one step did. Cell is the eaten cell for OutcomeAte.
type Outcome struct {
	Kind  OutcomeKind
	Cell  CellIndex
	Cause CollisionCause
}

// Advance moves the snake one cell in dir.
//
// Collision is checked against the snake as it stands before the step, tail
// included, so moving onto the cell the tail is about to leave is fatal.
// On collision the returned snake is the input unchanged.
func Advance(grid Grid, snake Snake, food FoodSet, dir Direction) (Snake, Outcome) {
	head, err := grid.ToPosition(snake.Head())
	if err != nil {
		return snake, Outcome{Kind: OutcomeCollided, Cause: CauseWall}
	}

	next := head.Step(dir)
	if !grid.Contains(next) {
		return snake, Outcome{Kind: OutcomeCollided, Cause: CauseWall}
	}

	newHead := grid.MustIndex(next)
	if snake.Contains(newHead) {
		return snake, Outcome{Kind: OutcomeCollided, Cause: CauseSelf}
	}

	cells := make([]CellIndex, 0, snake.Len()+1)
	cells = append(cells, newHead)
	cells = append(cells, snake.Cells...)

	if food.Contains(newHead) {
		return Snake{Cells: cells}, Outcome{Kind: OutcomeAte, Cell: newHead}
	}

	return Snake{Cells: cells[:len(cells)-1]}, Outcome{Kind: OutcomeContinue}
}
