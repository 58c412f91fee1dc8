package gdraw

import (
	"tilechess/ui/gui/gctx"
	"tilechess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneSettings
	SceneExit
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneSettings:
		s = NewGUISettingsDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

var face = basicfont.Face7x13

// mouse state shared by the scenes
type pointer struct {
	x, y         int
	justPressed  bool
	justReleased bool
}

func readPointer() pointer {
	x, y := ebiten.CursorPosition()
	return pointer{
		x:            x,
		y:            y,
		justPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		justReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// pressed returns the index of the clicked button or -1.
func pressed(buttons []*ghelper.Button, p pointer) int {
	idx := -1
	for i, b := range buttons {
		if b.HandleInput(p.x, p.y, p.justPressed, p.justReleased) {
			idx = i
		}
		b.UpdateAnim(1.0 / float64(ebiten.TPS()))
	}
	return idx
}
