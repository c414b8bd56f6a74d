package domain

import (
	"time"

	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds the random search for one free cell.
const MaxPlacementAttempts = 100

// Rand is the subset of a random source food placement needs.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// FoodSet holds food cells in placement order.
type FoodSet struct {
	Cells []CellIndex
}

func NewFoodSet(cells ...CellIndex) FoodSet {
	f := FoodSet{Cells: make([]CellIndex, len(cells))}
	copy(f.Cells, cells)
	return f
}

func (f FoodSet) Len() int {
	return len(f.Cells)
}

func (f FoodSet) Contains(c CellIndex) bool {
	for _, cell := range f.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

// Remove returns the set without c and whether c was present.
func (f FoodSet) Remove(c CellIndex) (FoodSet, bool) {
	for i, cell := range f.Cells {
		if cell == c {
			out := make([]CellIndex, 0, len(f.Cells)-1)
			out = append(out, f.Cells[:i]...)
			out = append(out, f.Cells[i+1:]...)
			return FoodSet{Cells: out}, true
		}
	}
	return f, false
}

func (f FoodSet) Copy() FoodSet {
	return NewFoodSet(f.Cells...)
}

// Refill tops food up to count cells, none on the snake or on existing food.
// Each missing item gets MaxPlacementAttempts tries; when those run out the
// remaining slots stay empty until the next call.
func Refill(rng Rand, grid Grid, snake Snake, food FoodSet, count int) FoodSet {
	out := food.Copy()

	for out.Len() < count {
		placed := false
		for attempts := 0; attempts < MaxPlacementAttempts; attempts++ {
			pos := Position{
				Row: rng.Intn(grid.Rows) + 1,
				Col: rng.Intn(grid.Cols) + 1,
			}
			cell := grid.MustIndex(pos)

			if !snake.Contains(cell) && !out.Contains(cell) {
				out.Cells = append(out.Cells, cell)
				placed = true
				break
			}
		}
		if !placed {
			break
		}
	}

	return out
}
