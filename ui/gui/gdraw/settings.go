package gdraw

import (
	"fmt"
	"tilechess/ui/gui/gbase"
	"tilechess/ui/gui/gctx"
	"tilechess/ui/gui/ghelper"
	"tilechess/ui/gui/ghelper/gdialog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GUISettingsDrawer struct {
	buttons []*ghelper.Button

	// index of buttons
	btnThemeIdx int
	btnSoundIdx int
	btnDebugIdx int
	btnApplyIdx int
	btnBackIdx  int
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{}
	sd.layoutButtons(ctx)
	return sd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (sd *GUISettingsDrawer) layoutButtons(ctx *gctx.GUIGameContext) {
	cfg := ctx.ConfigWorker.Config
	btnW, btnH := 260, 44
	spacingY := 16
	x := (cfg.WindowW - btnW) / 2
	y := 100

	sd.buttons = nil
	add := func(label string, x, y, w int) int {
		sd.buttons = append(sd.buttons, ghelper.NewButton(label, x, y, w, btnH, ctx.Theme))
		return len(sd.buttons) - 1
	}
	sd.btnThemeIdx = add("Theme: "+cfg.Theme, x, y, btnW)
	y += btnH + spacingY
	sd.btnSoundIdx = add("Sound: "+onOff(cfg.Sound), x, y, btnW)
	y += btnH + spacingY
	sd.btnDebugIdx = add("Debug: "+onOff(cfg.Debug), x, y, btnW)

	halfW := (btnW - spacingY) / 2
	y = cfg.WindowH - btnH - 60
	sd.btnBackIdx = add("Back", x, y, halfW)
	sd.btnApplyIdx = add("Save", x+halfW+spacingY, y, halfW)
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	cfg := &ctx.ConfigWorker.Config
	switch pressed(sd.buttons, readPointer()) {
	case sd.btnThemeIdx:
		if cfg.Theme == "light" {
			cfg.Theme = "dark"
		} else {
			cfg.Theme = "light"
		}
		ctx.Theme = gbase.PaletteFromString(cfg.Theme)
		ctx.SpriteWorker = ghelper.NewGUISpriteWorker(ctx.Layout.Square, ctx.Theme)
		sd.layoutButtons(ctx)
	case sd.btnSoundIdx:
		cfg.Sound = !cfg.Sound
		ctx.Sound = ghelper.NewSoundPlayer(cfg.Sound)
		sd.layoutButtons(ctx)
	case sd.btnDebugIdx:
		cfg.Debug = !cfg.Debug
		sd.layoutButtons(ctx)
	case sd.btnApplyIdx:
		if err := ctx.ConfigWorker.Save(); err != nil {
			ctx.Logx.Errorf("save config: %v", err)
			gdialog.ShowError("Settings", fmt.Sprintf("save config: %v", err))
		} else {
			ctx.Logx.Info("config saved")
		}
	case sd.btnBackIdx:
		return SceneMenu, nil
	}
	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	text.Draw(screen, "Settings", face, sd.buttons[0].X, 70, ctx.Theme.Text)
	for _, b := range sd.buttons {
		b.Draw(screen, face, ctx.Theme)
	}
}
