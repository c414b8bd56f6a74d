package types

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var (
	fontsOnce    sync.Once
	defaultFonts *Fonts
)

func GetFonts() *Fonts {
	fontsOnce.Do(func() {
		defaultFonts = &Fonts{
			Normal: basicfont.Face7x13,
			Small:  basicfont.Face7x13,
		}
	})
	return defaultFonts
}

// Measure returns the advance width and line height of s in face, in pixels.
func Measure(face font.Face, s string) (w, h int) {
	m := face.Metrics()
	return font.MeasureString(face, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}
