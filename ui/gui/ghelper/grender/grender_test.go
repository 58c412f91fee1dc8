package grender

import (
	"image/color"
	"testing"

	"tilechess/src/base"
)

var (
	red   = color.RGBA{0xff, 0, 0, 0xff}
	blue  = color.RGBA{0, 0, 0xff, 0xff}
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0, 0, 0, 0xff}
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestRenderTile(t *testing.T) {
	img := RenderTile(40, red, blue, false)
	if got := img.Bounds().Dx(); got != 40 {
		t.Fatalf("width = %d; want 40", got)
	}
	if got := rgba(img.At(0, 0)); got != red {
		t.Errorf("plain corner = %v; want fill", got)
	}

	hl := RenderTile(40, red, blue, true)
	if got := rgba(hl.At(1, 20)); got != blue {
		t.Errorf("highlighted edge = %v; want border", got)
	}
	if got := rgba(hl.At(20, 20)); got != red {
		t.Errorf("highlighted centre = %v; want fill", got)
	}
}

func TestRenderPiece(t *testing.T) {
	img := RenderPiece(48, base.Queen, base.White, white, black)
	if img.Bounds().Dx() != 48 || img.Bounds().Dy() != 48 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner outside the disc is not transparent")
	}
	if _, _, _, a := img.At(24, 8).RGBA(); a == 0 {
		t.Errorf("disc body is transparent")
	}
}

func TestRenderRoundedRect(t *testing.T) {
	img := RenderRoundedRect(100, 40, 12, white, black, 2)
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("rounded corner is filled")
	}
	if got := rgba(img.At(50, 20)); got != white {
		t.Errorf("centre = %v; want fill", got)
	}
}

func TestPointInRect(t *testing.T) {
	if !PointInRect(5, 5, 0, 0, 10, 10) || PointInRect(10, 5, 0, 0, 10, 10) {
		t.Errorf("PointInRect boundary wrong")
	}
}
