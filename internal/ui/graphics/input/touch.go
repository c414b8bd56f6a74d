package input

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultSwipeThreshold is the minimum travel in pixels for a swipe.
const DefaultSwipeThreshold = 30

// SwipeDirection classifies a drag by its dominant axis. Drags shorter than
// threshold on both axes return 0.
func SwipeDirection(dx, dy, threshold int) domain.Direction {
	ax, ay := abs(dx), abs(dy)
	if ax < threshold && ay < threshold {
		return 0
	}
	if ax >= ay {
		if dx > 0 {
			return domain.DirectionRight
		}
		return domain.DirectionLeft
	}
	if dy > 0 {
		return domain.DirectionDown
	}
	return domain.DirectionUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type touchStart struct {
	x, y int
}

// SwipeHandler turns touch drags into directions. Touches that start inside
// an excluded area (buttons, the dpad) are ignored.
type SwipeHandler struct {
	Threshold int
	Exclude   func(x, y int) bool

	starts map[ebiten.TouchID]touchStart
	ids    []ebiten.TouchID
}

func NewSwipeHandler() *SwipeHandler {
	return &SwipeHandler{
		Threshold: DefaultSwipeThreshold,
		starts:    make(map[ebiten.TouchID]touchStart),
	}
}

func (sh *SwipeHandler) Update() domain.Direction {
	sh.ids = inpututil.AppendJustPressedTouchIDs(sh.ids[:0])
	for _, id := range sh.ids {
		x, y := ebiten.TouchPosition(id)
		if sh.Exclude != nil && sh.Exclude(x, y) {
			continue
		}
		sh.starts[id] = touchStart{x, y}
	}

	var dir domain.Direction
	sh.ids = inpututil.AppendJustReleasedTouchIDs(sh.ids[:0])
	for _, id := range sh.ids {
		start, ok := sh.starts[id]
		if !ok {
			continue
		}
		delete(sh.starts, id)
		x, y := inpututil.TouchPositionInPreviousTick(id)
		if d := SwipeDirection(x-start.x, y-start.y, sh.Threshold); d != 0 && dir == 0 {
			dir = d
		}
	}
	return dir
}

// Reset drops touches in flight, e.g. on screen change.
func (sh *SwipeHandler) Reset() {
	for id := range sh.starts {
		delete(sh.starts, id)
	}
}
