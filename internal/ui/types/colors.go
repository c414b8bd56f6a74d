package types

import "image/color"

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorBorder        = color.RGBA{100, 100, 110, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
)

// Theme is the board palette for one level.
type Theme struct {
	Name   string
	Board  color.RGBA
	Grid   color.RGBA
	Snake  color.RGBA
	Head   color.RGBA
	Food   color.RGBA
	Accent color.RGBA
}

var themes = map[string]Theme{
	"easy": {
		Name:   "easy",
		Board:  color.RGBA{34, 48, 36, 255},
		Grid:   color.RGBA{48, 66, 50, 255},
		Snake:  color.RGBA{100, 200, 100, 255},
		Head:   color.RGBA{70, 140, 70, 255},
		Food:   color.RGBA{255, 80, 80, 255},
		Accent: color.RGBA{140, 230, 140, 255},
	},
	"medium": {
		Name:   "medium",
		Board:  color.RGBA{30, 36, 54, 255},
		Grid:   color.RGBA{44, 52, 76, 255},
		Snake:  color.RGBA{100, 150, 255, 255},
		Head:   color.RGBA{70, 105, 180, 255},
		Food:   color.RGBA{255, 200, 100, 255},
		Accent: color.RGBA{150, 190, 255, 255},
	},
	"hard": {
		Name:   "hard",
		Board:  color.RGBA{54, 30, 30, 255},
		Grid:   color.RGBA{76, 44, 44, 255},
		Snake:  color.RGBA{255, 140, 60, 255},
		Head:   color.RGBA{180, 95, 40, 255},
		Food:   color.RGBA{100, 255, 255, 255},
		Accent: color.RGBA{255, 170, 110, 255},
	},
}

// ThemeFor falls back to the easy palette for unknown names.
func ThemeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["easy"]
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
