package gui

import (
	"tilechess/src"
	"tilechess/src/logx"
	"tilechess/src/view"
	"tilechess/ui/gui/gbase/gconf"
	"tilechess/ui/gui/gctx"
	"tilechess/ui/gui/gdraw"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(s *src.Session, c *view.Canvas, cw *gconf.GUIConfigWorker, l logx.Logger) *GUIProcessing {
	ctx := gctx.NewGUIGameContext(s, c, cw, l)
	return &GUIProcessing{
		current: gdraw.NewGUIPlayDrawer(ctx),
		ctx:     ctx,
	}
}

// Session returns the game on screen; "New game" replaces it.
func (gp *GUIProcessing) Session() *src.Session {
	return gp.ctx.Session
}

func (gp *GUIProcessing) Run() error {
	cfg := gp.ctx.ConfigWorker.Config
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle("TileChess")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next == gdraw.SceneExit {
		return ebiten.Termination
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := gp.ctx.ConfigWorker.Config
	return cfg.WindowW, cfg.WindowH
}
