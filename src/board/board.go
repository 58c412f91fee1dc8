package board

import (
	"fmt"
	"tilechess/src/base"
)

type Tile struct {
	At     base.Point
	Pos    base.Vec3
	Handle base.Handle
	Piece  *base.Piece // not owned
}

func (t *Tile) Light() bool {
	return (t.At.X+t.At.Y)%2 == 0
}

// Board owns the 8x8 grid. Tiles are created once by Initialize.
type Board struct {
	tiles [base.BoardSize][base.BoardSize]*Tile // [x][y]
	pitch float64
	ready bool
}

func New() *Board {
	return &Board{}
}

func (b *Board) Initialize(pitch float64) error {
	if b.ready {
		return base.ErrAlreadyInitialized
	}
	pitch = base.NormalizePitch(pitch)
	b.pitch = pitch
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			p := base.Point{X: x, Y: y}
			b.tiles[x][y] = &Tile{At: p, Pos: base.TilePos(p, pitch)}
		}
	}
	b.ready = true
	return nil
}

func (b *Board) Ready() bool {
	return b.ready
}

func (b *Board) Pitch() float64 {
	return b.pitch
}

func (b *Board) TileAt(x, y int) (*Tile, error) {
	if !b.ready {
		return nil, base.ErrNotInitialized
	}
	if !base.IsValidPoint(base.Point{X: x, Y: y}) {
		return nil, fmt.Errorf("tile (%d,%d): %w", x, y, base.ErrOutOfRange)
	}
	return b.tiles[x][y], nil
}

// FindTileByHandle scans all 64 tiles.
func (b *Board) FindTileByHandle(h base.Handle) (*Tile, error) {
	if h != base.NoHandle && b.ready {
		for y := 0; y < base.BoardSize; y++ {
			for x := 0; x < base.BoardSize; x++ {
				if b.tiles[x][y].Handle == h {
					return b.tiles[x][y], nil
				}
			}
		}
	}
	return nil, fmt.Errorf("tile with handle %d: %w", h, base.ErrNotFound)
}

func (b *Board) SetOccupant(t *Tile, p *base.Piece) {
	if t == nil {
		return
	}
	t.Piece = p
}

// Tiles returns every tile, y outer and x inner.
func (b *Board) Tiles() []*Tile {
	if !b.ready {
		return nil
	}
	out := make([]*Tile, 0, base.BoardSize*base.BoardSize)
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			out = append(out, b.tiles[x][y])
		}
	}
	return out
}

func (b *Board) Grid() base.Grid {
	var g base.Grid
	if !b.ready {
		return g
	}
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			if p := b.tiles[x][y].Piece; p != nil {
				g[y][x] = base.Cell{Variant: p.Variant, Side: p.Side}
			}
		}
	}
	return g
}
