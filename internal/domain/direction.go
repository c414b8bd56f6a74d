package domain

import "fmt"

type Direction int

const (
	DirectionUp    Direction = 1
	DirectionDown  Direction = 2
	DirectionLeft  Direction = 3
	DirectionRight Direction = 4
)

// Directions lists every valid direction in declaration order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// Delta is the (row, col) offset of a single step.
func (d Direction) Delta() Position {
	switch d {
	case DirectionUp:
		return Position{Row: -1}
	case DirectionDown:
		return Position{Row: 1}
	case DirectionLeft:
		return Position{Col: -1}
	case DirectionRight:
		return Position{Col: 1}
	}
	return Position{}
}

func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && d.Opposite() == other
}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
