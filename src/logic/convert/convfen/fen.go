package convfen

import (
	"errors"
	"fmt"
	"strings"
	"tilechess/src/base"

	"github.com/notnil/chess"
)

var ErrBadFEN = errors.New("error parse FEN")

// Grid row y=0 is the black back rank, so it maps to rank 8.

var toChess = map[base.Cell]chess.Piece{
	{Variant: base.King, Side: base.White}:   chess.WhiteKing,
	{Variant: base.Queen, Side: base.White}:  chess.WhiteQueen,
	{Variant: base.Rook, Side: base.White}:   chess.WhiteRook,
	{Variant: base.Bishop, Side: base.White}: chess.WhiteBishop,
	{Variant: base.Knight, Side: base.White}: chess.WhiteKnight,
	{Variant: base.Pawn, Side: base.White}:   chess.WhitePawn,
	{Variant: base.King, Side: base.Black}:   chess.BlackKing,
	{Variant: base.Queen, Side: base.Black}:  chess.BlackQueen,
	{Variant: base.Rook, Side: base.Black}:   chess.BlackRook,
	{Variant: base.Bishop, Side: base.Black}: chess.BlackBishop,
	{Variant: base.Knight, Side: base.Black}: chess.BlackKnight,
	{Variant: base.Pawn, Side: base.Black}:   chess.BlackPawn,
}

var fromChess = func() map[chess.Piece]base.Cell {
	m := make(map[chess.Piece]base.Cell, len(toChess))
	for c, p := range toChess {
		m[p] = c
	}
	return m
}()

func square(x, y int) chess.Square {
	rank := base.BoardSize - 1 - y
	return chess.Square(rank*base.BoardSize + x)
}

// ConvertGridToFEN returns the piece placement field of a FEN string.
func ConvertGridToFEN(g base.Grid) string {
	m := make(map[chess.Square]chess.Piece)
	for y := 0; y < base.BoardSize; y++ {
		for x := 0; x < base.BoardSize; x++ {
			if p, ok := toChess[g[y][x]]; ok {
				m[square(x, y)] = p
			}
		}
	}
	return chess.NewBoard(m).String()
}

// ConvertFENToGrid accepts either a full FEN or just its placement field.
func ConvertFENToGrid(fen string) (base.Grid, error) {
	var g base.Grid
	full := fen
	if !strings.ContainsRune(fen, ' ') {
		full = fen + " w - - 0 1"
	}
	opt, err := chess.FEN(full)
	if err != nil {
		return g, fmt.Errorf("%w: %w", ErrBadFEN, err)
	}
	game := chess.NewGame(opt)
	for sq, p := range game.Position().Board().SquareMap() {
		c, ok := fromChess[p]
		if !ok {
			continue
		}
		x := int(sq) % base.BoardSize
		y := base.BoardSize - 1 - int(sq)/base.BoardSize
		g[y][x] = c
	}
	return g, nil
}
