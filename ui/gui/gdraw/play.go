package gdraw

import (
	"fmt"
	"image/color"
	"tilechess/src"
	"tilechess/src/base"
	"tilechess/src/view"
	"tilechess/ui/gui/gbase"
	"tilechess/ui/gui/gctx"
	"tilechess/ui/gui/ghelper"
	"tilechess/ui/gui/ghelper/gclipboard"
	"tilechess/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GUIPlayDrawer implements Scene
type GUIPlayDrawer struct {
	rings  []*gbase.Ring
	status string

	buttons []*ghelper.Button
	idxNew  int
	idxFEN  int
	idxCopy int
	idxBack int
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{status: "click a piece"}
	l := ctx.Layout
	x := l.BoardX + l.BoardSize() + 24
	y := l.BoardY + 140
	btnW, btnH := gctx.PanelW-40, 40

	add := func(label string) int {
		pd.buttons = append(pd.buttons, ghelper.NewButton(label, x, y, btnW, btnH, ctx.Theme))
		y += btnH + 12
		return len(pd.buttons) - 1
	}
	pd.idxNew = add("New game")
	pd.idxFEN = add("Show FEN")
	pd.idxCopy = add("Copy FEN")
	pd.idxBack = add("Menu")
	return pd
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return SceneMenu, nil
	}
	p := readPointer()

	switch pressed(pd.buttons, p) {
	case pd.idxNew:
		if err := pd.newGame(ctx); err != nil {
			return SceneNotChanged, err
		}
	case pd.idxFEN:
		fen := ctx.Session.FEN()
		ctx.Logx.Infof("FEN %s", fen)
		gdialog.ShowInfo("Position", fen)
	case pd.idxCopy:
		if err := gclipboard.WriteAll(ctx.Session.FEN()); err != nil {
			ctx.Logx.Warnf("copy FEN: %v", err)
			pd.status = "clipboard unavailable"
		} else {
			pd.status = "FEN copied"
		}
	case pd.idxBack:
		return SceneMenu, nil
	}

	if p.justPressed {
		if out, ok := ctx.Layout.Route(ctx.Session, ctx.Canvas, p.x, p.y); ok {
			pd.status = out.String()
		}
	}

	for _, e := range ctx.Canvas.DrainEffects() {
		switch e.Kind {
		case view.EffectRing:
			x, y := ctx.Layout.WorldToPixel(e.Pos)
			pd.rings = append(pd.rings, &gbase.Ring{X: x, Y: y})
		case view.EffectSound:
			ctx.Sound.Click()
		}
	}
	alive := pd.rings[:0]
	for _, r := range pd.rings {
		r.Age++
		if !r.Done() {
			alive = append(alive, r)
		}
	}
	pd.rings = alive
	return SceneNotChanged, nil
}

// newGame closes the running session and lays out a fresh one on the same canvas.
func (pd *GUIPlayDrawer) newGame(ctx *gctx.GUIGameContext) error {
	if err := ctx.Session.Close(); err != nil {
		ctx.Logx.Warnf("close previous game: %v", err)
	}
	ctx.Canvas.Reset()
	s := src.NewSession(ctx.Canvas, ctx.Logx)
	if err := s.CreateClassic(ctx.Layout.Pitch); err != nil {
		return err
	}
	ctx.Session = s
	pd.rings = nil
	pd.status = "new game " + s.Name()
	return nil
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	l := ctx.Layout
	sw := ctx.SpriteWorker

	visuals := ctx.Canvas.Visuals()
	lit := make(map[base.Handle]bool)
	for _, v := range visuals {
		if v.Kind == view.KindPiece && v.Highlighted {
			lit[v.Parent] = true
		}
	}
	for _, v := range visuals {
		if v.Kind != view.KindTile {
			continue
		}
		x, y := l.PointOrigin(v.At)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(sw.Tile(v.Light, lit[v.Handle]), op)
	}
	for _, v := range visuals {
		if v.Kind != view.KindPiece {
			continue
		}
		img := sw.Piece(v.Variant, v.Side)
		if img == nil {
			continue
		}
		cx, cy := l.WorldToPixel(v.Pos)
		half := float64(sw.Size()) / 2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-half, cy-half)
		screen.DrawImage(img, op)
	}

	for _, r := range pd.rings {
		radius := float32(float64(l.Square) * (0.3 + 0.4*r.Progress()))
		e := ctx.Theme.Effect
		c := color.NRGBA{R: e.R, G: e.G, B: e.B, A: uint8(255 * (1 - r.Progress()))}
		vector.StrokeCircle(screen, float32(r.X), float32(r.Y), radius, 3, c, true)
	}

	// side panel
	px := l.BoardX + l.BoardSize() + 24
	white, black := ctx.Canvas.Score()
	text.Draw(screen, white, face, px, l.BoardY+20, ctx.Theme.Text)
	text.Draw(screen, black, face, px, l.BoardY+40, ctx.Theme.Text)
	sel := "none"
	if p := ctx.Session.Selected(); p != nil {
		sel = p.String()
	}
	text.Draw(screen, "Selected: "+sel, face, px, l.BoardY+70, ctx.Theme.Text)
	text.Draw(screen, pd.status, face, px, l.BoardY+90, ctx.Theme.Text)
	if last, ok := ctx.Session.History().Last(); ok {
		text.Draw(screen, fmt.Sprintf("Move %d: %s", ctx.Session.History().Len(), last), face, px, l.BoardY+110, ctx.Theme.Text)
	}

	for _, b := range pd.buttons {
		b.Draw(screen, face, ctx.Theme)
	}

	if ctx.ConfigWorker.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f  game %s", ebiten.ActualTPS(), ctx.Session.Name()))
	}
}
