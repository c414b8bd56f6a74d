package components

import (
	"image/color"

	"github.com/Nilesh-194/snake-game-mobile/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button reacts to a left click or a tap released inside its bounds.
type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Enabled       bool
	Accent        color.RGBA
	hovered       bool
	pressed       bool

	touches []ebiten.TouchID
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Enabled: true,
	}
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

func (b *Button) Update() bool {
	if !b.Enabled {
		b.hovered, b.pressed = false, false
		return false
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = b.Contains(mx, my)

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := wasPressed && !b.pressed && b.hovered

	b.touches = ebiten.AppendTouchIDs(b.touches[:0])
	for _, id := range b.touches {
		if b.Contains(ebiten.TouchPosition(id)) {
			b.hovered, b.pressed = true, true
		}
	}

	b.touches = inpututil.AppendJustReleasedTouchIDs(b.touches[:0])
	for _, id := range b.touches {
		if b.Contains(inpututil.TouchPositionInPreviousTick(id)) {
			clicked = true
		}
	}

	return clicked
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	if !b.Enabled {
		bgColor = types.Darken(types.ColorButton, 0.5)
	} else if b.pressed {
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	} else if b.hovered {
		bgColor = types.ColorButtonHover
	} else {
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	border := types.ColorBorder
	if b.Accent.A != 0 {
		border = b.Accent
	}
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, border, false)

	fonts := types.GetFonts()
	textColor := types.ColorButtonText
	if !b.Enabled {
		textColor = types.ColorTextDim
	}

	bounds := text.BoundString(fonts.Normal, b.Text)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, b.Text, fonts.Normal, textX, textY, textColor)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
