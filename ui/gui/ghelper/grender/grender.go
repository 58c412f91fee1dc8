// Package grender draws tiles, pieces and widgets into plain images with gg.
package grender

import (
	"image"
	"image/color"

	"tilechess/src/base"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

func setRGBA(dc *gg.Context, c color.RGBA) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}

// RenderRoundedRect draws an anti-aliased rounded rectangle with a stroke.
func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) image.Image {
	dc := gg.NewContext(w, h)
	setRGBA(dc, fill)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	setRGBA(dc, stroke)
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return dc.Image()
}

// RenderTile is a flat square; the highlighted variant gets a thick inner border.
func RenderTile(size int, fill color.RGBA, border color.RGBA, highlighted bool) image.Image {
	dc := gg.NewContext(size, size)
	setRGBA(dc, fill)
	dc.Clear()
	if highlighted {
		setRGBA(dc, border)
		dc.SetLineWidth(float64(size) / 10)
		dc.DrawRectangle(0, 0, float64(size), float64(size))
		dc.Stroke()
	}
	return dc.Image()
}

// RenderPiece draws a disc with the piece letter centred on it.
func RenderPiece(size int, v base.Variant, s base.Side, body, ink color.RGBA) image.Image {
	dc := gg.NewContext(size, size)
	r := float64(size) * 0.38
	c := float64(size) / 2

	setRGBA(dc, body)
	dc.DrawCircle(c, c, r)
	dc.FillPreserve()
	setRGBA(dc, ink)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawStringAnchored(string(base.VariantRune(v, s)), c, c, 0.5, 0.35)
	return dc.Image()
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}
