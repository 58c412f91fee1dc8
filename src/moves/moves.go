package moves

import (
	"math"
	"tilechess/src/base"
	"tilechess/src/board"
	"tilechess/src/pieces"
	"tilechess/src/view"
)

// MaxStep is the largest forward/backward displacement, in tile pitches.
const MaxStep = 2

type Result struct {
	Accept bool
}

type Evaluator struct {
	board     *board.Board
	registry  *pieces.Registry
	presenter view.Presenter
}

func NewEvaluator(b *board.Board, r *pieces.Registry, p view.Presenter) *Evaluator {
	return &Evaluator{board: b, registry: r, presenter: p}
}

// Legal reports whether piece may move onto target. Only the z displacement
// is bounded: the x clause is an OR and always holds.
func (e *Evaluator) Legal(piece *base.Piece, target *board.Tile) bool {
	if piece == nil || target == nil || target.Piece != nil {
		return false
	}
	limit := MaxStep * e.board.Pitch()
	dz := math.Abs(target.Pos.Z - piece.Pos.Z)
	dx := math.Abs(target.Pos.X - piece.Pos.X)
	return (dz >= 0 && dz <= limit) && (dx >= 0 || dx <= limit)
}

// Evaluate checks legality and commits the move when it is accepted.
// A rejected move changes nothing.
func (e *Evaluator) Evaluate(piece *base.Piece, target *board.Tile) Result {
	if !e.Legal(piece, target) {
		return Result{Accept: false}
	}

	if origin, err := e.board.TileAt(piece.At.X, piece.At.Y); err == nil && origin.Piece == piece {
		e.board.SetOccupant(origin, nil)
	}
	e.registry.Relocate(piece, target.At.X, target.At.Y)
	e.board.SetOccupant(target, piece)

	piece.Pos = target.Pos
	e.presenter.MoveVisual(piece.Handle, target.Handle, target.Pos)
	e.presenter.Restore(piece.Handle)
	return Result{Accept: true}
}
