package pieces

import (
	"fmt"
	"tilechess/src/base"
	"tilechess/src/board"
)

// New builds a piece for the given variant tag. The position of the visual is
// left zero; callers that place the piece on a board set it.
func New(v base.Variant, s base.Side, at base.Point) (*base.Piece, error) {
	switch v {
	case base.Pawn, base.Rook, base.Knight, base.Bishop, base.Queen, base.King:
		return &base.Piece{Variant: v, Side: s, At: at}, nil
	default:
		return nil, fmt.Errorf("%v: %w", v, base.ErrUnknownVariant)
	}
}

// Registry owns every piece on a board.
type Registry struct {
	board  *board.Board
	pieces []*base.Piece
}

func NewRegistry(b *board.Board) *Registry {
	return &Registry{board: b}
}

// Spawn places a new piece on an empty tile.
func (r *Registry) Spawn(v base.Variant, s base.Side, x, y int) (*base.Piece, error) {
	tile, err := r.board.TileAt(x, y)
	if err != nil {
		return nil, err
	}
	if tile.Piece != nil {
		return nil, fmt.Errorf("spawn %s %s at %s: %w", s, v, tile.At, base.ErrDuplicateOccupant)
	}
	p, err := New(v, s, tile.At)
	if err != nil {
		return nil, err
	}
	p.Pos = base.PiecePos(tile.At, r.board.Pitch())
	r.pieces = append(r.pieces, p)
	r.board.SetOccupant(tile, p)
	return p, nil
}

func (r *Registry) FindByHandle(h base.Handle) (*base.Piece, error) {
	if h != base.NoHandle {
		for _, p := range r.pieces {
			if p.Handle == h {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("piece with handle %d: %w", h, base.ErrNotFound)
}

// Relocate only rewrites coordinates. Tile occupancy is the caller's job.
func (r *Registry) Relocate(p *base.Piece, x, y int) {
	p.At = base.Point{X: x, Y: y}
}

func (r *Registry) Pieces() []*base.Piece {
	return r.pieces
}

func (r *Registry) Count(s base.Side) int {
	n := 0
	for _, p := range r.pieces {
		if p.Side == s {
			n++
		}
	}
	return n
}

// Clear drops every piece and empties the board tiles they occupied.
func (r *Registry) Clear() {
	for _, p := range r.pieces {
		if tile, err := r.board.TileAt(p.At.X, p.At.Y); err == nil && tile.Piece == p {
			r.board.SetOccupant(tile, nil)
		}
	}
	r.pieces = nil
}
