package components

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
)

// DPad is a plus-shaped set of four buttons for touch and mouse steering.
type DPad struct {
	buttons map[domain.Direction]*Button
	size    int
}

func NewDPad(size int) *DPad {
	labels := map[domain.Direction]string{
		domain.DirectionUp:    "^",
		domain.DirectionDown:  "v",
		domain.DirectionLeft:  "<",
		domain.DirectionRight: ">",
	}
	d := &DPad{buttons: make(map[domain.Direction]*Button, 4), size: size}
	for dir, label := range labels {
		d.buttons[dir] = NewButton(0, 0, size, size, label)
	}
	return d
}

// SetPosition places the pad with its center button slot at (cx, cy).
func (d *DPad) SetPosition(cx, cy int) {
	half := d.size / 2
	gap := d.size + 4
	d.buttons[domain.DirectionUp].SetPosition(cx-half, cy-half-gap)
	d.buttons[domain.DirectionDown].SetPosition(cx-half, cy-half+gap)
	d.buttons[domain.DirectionLeft].SetPosition(cx-half-gap, cy-half)
	d.buttons[domain.DirectionRight].SetPosition(cx-half+gap, cy-half)
}

// Extent is the width and height the pad covers.
func (d *DPad) Extent() int {
	return 3*d.size + 8
}

// Update returns the pressed direction, or 0.
func (d *DPad) Update() domain.Direction {
	var pressed domain.Direction
	for _, dir := range domain.Directions {
		if d.buttons[dir].Update() && pressed == 0 {
			pressed = dir
		}
	}
	return pressed
}

func (d *DPad) Draw(screen *ebiten.Image) {
	for _, dir := range domain.Directions {
		d.buttons[dir].Draw(screen)
	}
}

func (d *DPad) Contains(x, y int) bool {
	for _, b := range d.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}
