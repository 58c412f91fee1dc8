package ghelper

import (
	"tilechess/src/base"
	"tilechess/ui/gui/gbase"
	"tilechess/ui/gui/ghelper/grender"

	"github.com/hajimehoshi/ebiten/v2"
)

type tileKey struct {
	light, highlighted bool
}

// GUISpriteWorker caches tile and piece images for one square size.
type GUISpriteWorker struct {
	size   int
	tiles  map[tileKey]*ebiten.Image
	pieces map[base.Cell]*ebiten.Image
}

func NewGUISpriteWorker(size int, theme gbase.Palette) *GUISpriteWorker {
	sw := &GUISpriteWorker{
		size:   size,
		tiles:  make(map[tileKey]*ebiten.Image),
		pieces: make(map[base.Cell]*ebiten.Image),
	}
	for _, light := range []bool{true, false} {
		fill := theme.TileDark
		if light {
			fill = theme.TileLight
		}
		for _, hl := range []bool{true, false} {
			img := grender.RenderTile(size, fill, theme.Selection, hl)
			sw.tiles[tileKey{light, hl}] = ebiten.NewImageFromImage(img)
		}
	}
	for _, s := range []base.Side{base.White, base.Black} {
		body, ink := theme.PieceWhite, theme.PieceBlack
		if s == base.Black {
			body, ink = theme.PieceBlack, theme.PieceWhite
		}
		for v := base.Pawn; v <= base.King; v++ {
			img := grender.RenderPiece(size, v, s, body, ink)
			sw.pieces[base.Cell{Variant: v, Side: s}] = ebiten.NewImageFromImage(img)
		}
	}
	return sw
}

func (sw *GUISpriteWorker) Size() int {
	return sw.size
}

func (sw *GUISpriteWorker) Tile(light, highlighted bool) *ebiten.Image {
	return sw.tiles[tileKey{light, highlighted}]
}

func (sw *GUISpriteWorker) Piece(v base.Variant, s base.Side) *ebiten.Image {
	return sw.pieces[base.Cell{Variant: v, Side: s}]
}
