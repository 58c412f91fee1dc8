package gdraw

import (
	"tilechess/ui/gui/gctx"
	"tilechess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUIMenuDrawer struct {
	buttons     []*ghelper.Button
	idxPlay     int
	idxSettings int
	idxExit     int
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{}
	cfg := ctx.ConfigWorker.Config
	btnW, btnH := 220, 48
	x := (cfg.WindowW - btnW) / 2
	y := cfg.WindowH/2 - btnH*2

	add := func(label string) int {
		md.buttons = append(md.buttons, ghelper.NewButton(label, x, y, btnW, btnH, ctx.Theme))
		y += btnH + 18
		return len(md.buttons) - 1
	}
	md.idxPlay = add("Play")
	md.idxSettings = add("Settings")
	md.idxExit = add("Exit")
	return md
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	switch pressed(md.buttons, readPointer()) {
	case md.idxPlay:
		return ScenePlay, nil
	case md.idxSettings:
		return SceneSettings, nil
	case md.idxExit:
		return SceneExit, nil
	}
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	title := "TileChess"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (ctx.ConfigWorker.Config.WindowW-bounds.Dx())/2, md.buttons[0].Y-40, ctx.Theme.Text)
	for _, b := range md.buttons {
		b.Draw(screen, face, ctx.Theme)
	}
}
