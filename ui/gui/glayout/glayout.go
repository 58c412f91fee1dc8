// Package glayout converts between window pixels, board points and world units.
package glayout

import (
	"tilechess/src/base"
)

type Layout struct {
	BoardX, BoardY int // top-left pixel
	Square         int // pixel size of one tile
	Pitch          float64
}

// Fit centres the board in a window, leaving room for the side panel.
func Fit(windowW, windowH int, panelW int, pitch float64) Layout {
	size := windowW - panelW - 40
	if size > windowH-80 {
		size = windowH - 80
	}
	if size < 8*16 {
		size = 8 * 16
	}
	sq := size / base.BoardSize
	pitch = base.NormalizePitch(pitch)
	return Layout{
		BoardX: 20,
		BoardY: (windowH - sq*base.BoardSize) / 2,
		Square: sq,
		Pitch:  pitch,
	}
}

func (l Layout) BoardSize() int {
	return l.Square * base.BoardSize
}

func (l Layout) InBoard(px, py int) bool {
	return px >= l.BoardX && py >= l.BoardY && px < l.BoardX+l.BoardSize() && py < l.BoardY+l.BoardSize()
}

// PixelToPoint returns the grid point under a pixel; row y=0 is drawn on top.
func (l Layout) PixelToPoint(px, py int) (base.Point, bool) {
	if !l.InBoard(px, py) {
		return base.Point{}, false
	}
	return base.Point{X: (px - l.BoardX) / l.Square, Y: (py - l.BoardY) / l.Square}, true
}

// PointOrigin is the top-left pixel of a square.
func (l Layout) PointOrigin(p base.Point) (int, int) {
	return l.BoardX + p.X*l.Square, l.BoardY + p.Y*l.Square
}

// WorldToPixel maps a world position onto the centre of the square it sits on.
func (l Layout) WorldToPixel(pos base.Vec3) (float64, float64) {
	half := float64(l.Square) / 2
	x := float64(l.BoardX) + pos.X/l.Pitch*float64(l.Square) + half
	y := float64(l.BoardY) + pos.Z/l.Pitch*float64(l.Square) + half
	return x, y
}
