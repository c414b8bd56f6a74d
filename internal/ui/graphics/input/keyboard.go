package input

import (
	"github.com/Nilesh-194/snake-game-mobile/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the direction pressed this frame, or 0.
func (kh *KeyboardHandler) Update() domain.Direction {
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		return domain.DirectionUp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		return domain.DirectionDown
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		return domain.DirectionLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		return domain.DirectionRight
	}

	return 0
}

var levelKeys = []struct {
	key   ebiten.Key
	alt   ebiten.Key
	level string
}{
	{ebiten.Key1, ebiten.KeyNumpad1, domain.LevelEasy},
	{ebiten.Key2, ebiten.KeyNumpad2, domain.LevelMedium},
	{ebiten.Key3, ebiten.KeyNumpad3, domain.LevelHard},
}

// LevelShortcut returns the level picked with 1/2/3 this frame, or "".
func LevelShortcut() string {
	for _, lk := range levelKeys {
		if inpututil.IsKeyJustPressed(lk.key) || inpututil.IsKeyJustPressed(lk.alt) {
			return lk.level
		}
	}
	return ""
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

func IsPausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func IsQuitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
