package ghelper

import (
	"math"
	"tilechess/ui/gui/gbase"
	"tilechess/ui/gui/ghelper/grender"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	Pressed bool
	// animation
	Scale       float64
	TargetScale float64
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	img := grender.RenderRoundedRect(w, h, 10, theme.ButtonFill, theme.ButtonStroke, 2)
	return &Button{
		Label:       label,
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		Image:       ebiten.NewImageFromImage(img),
		Scale:       1,
		TargetScale: 1,
	}
}

func (b *Button) Contains(px, py int) bool {
	return grender.PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// Call every Update; returns true when a press that started on the button
// is released inside it.
func (b *Button) HandleInput(px, py int, justPressed, justReleased bool) bool {
	inside := b.Contains(px, py)
	if justPressed && inside {
		b.Pressed = true
		b.TargetScale = 0.96
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetScale = 1.0
		return clicked
	}
	if !b.Pressed {
		b.TargetScale = 1.0
		if inside {
			b.TargetScale = 1.02
		}
	}
	return false
}

// dt in seconds
func (b *Button) UpdateAnim(dt float64) {
	t := 1.0 - math.Exp(-10*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y + b.H/2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, theme.ButtonText)
}
