package gctx

import (
	"tilechess/src"
	"tilechess/src/logx"
	"tilechess/src/view"
	"tilechess/ui/gui/gbase"
	"tilechess/ui/gui/gbase/gconf"
	"tilechess/ui/gui/ghelper"
	"tilechess/ui/gui/glayout"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Session      *src.Session
	Canvas       *view.Canvas
	SpriteWorker *ghelper.GUISpriteWorker
	ConfigWorker *gconf.GUIConfigWorker
	Layout       glayout.Layout
	Sound        *ghelper.SoundPlayer
	Theme        gbase.Palette
	Logx         logx.Logger
}

const PanelW = 200

func NewGUIGameContext(s *src.Session, c *view.Canvas, cw *gconf.GUIConfigWorker, l logx.Logger) *GUIGameContext {
	cfg := cw.Config
	theme := gbase.PaletteFromString(cfg.Theme)
	layout := glayout.Fit(cfg.WindowW, cfg.WindowH, PanelW, s.Board().Pitch())
	return &GUIGameContext{
		Session:      s,
		Canvas:       c,
		SpriteWorker: ghelper.NewGUISpriteWorker(layout.Square, theme),
		ConfigWorker: cw,
		Layout:       layout,
		Sound:        ghelper.NewSoundPlayer(cfg.Sound),
		Theme:        theme,
		Logx:         l,
	}
}
