package gbase

import (
	"image/color"
	"math"
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	TileLight    color.RGBA
	TileDark     color.RGBA
	Selection    color.RGBA
	Effect       color.RGBA
	PieceWhite   color.RGBA
	PieceBlack   color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	Text         color.RGBA
}

func PaletteFromString(p string) Palette {
	if p == "dark" {
		return DarkPalette
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	TileLight:    color.RGBA{0xee, 0xee, 0xd2, 0xff},
	TileDark:     color.RGBA{0x76, 0x96, 0x56, 0xff},
	Selection:    color.RGBA{0xf6, 0xd3, 0x2d, 0xff},
	Effect:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	PieceWhite:   color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
	PieceBlack:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	Text:         color.RGBA{0x22, 0x22, 0x22, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	TileLight:    color.RGBA{0x8c, 0x8c, 0x8c, 0xff},
	TileDark:     color.RGBA{0x3c, 0x3c, 0x3c, 0xff},
	Selection:    color.RGBA{0xd1, 0x8a, 0x2a, 0xff},
	Effect:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	PieceWhite:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	PieceBlack:   color.RGBA{0x10, 0x10, 0x10, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	Text:         color.RGBA{0xee, 0xee, 0xee, 0xff},
}

// ---- Effects ----

// Ring is a fading circle spawned when a piece is selected.
type Ring struct {
	X, Y float64
	Age  int // ticks
}

const RingTicks = 30

func (r *Ring) Done() bool {
	return r.Age >= RingTicks
}

// Progress runs from 0 to 1 over the ring's life.
func (r *Ring) Progress() float64 {
	return math.Min(1, float64(r.Age)/RingTicks)
}
