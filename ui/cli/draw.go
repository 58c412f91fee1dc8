package cli

import (
	"fmt"
	"io"
	"tilechess/src/base"
	"tilechess/src/view"
)

// ANSI-code
const (
	reset     = "\033[0m"
	lightBg   = "\033[47m"
	darkBg    = "\033[100m"
	selectBg  = "\033[43m"
	whiteF    = "\033[97m"
	blackF    = "\033[30m"
	dimF      = "\033[90m"
	clearHome = "\033[H\033[2J"
)

var glyphs = map[base.Cell]string{
	{Variant: base.King, Side: base.White}:   "♔",
	{Variant: base.Queen, Side: base.White}:  "♕",
	{Variant: base.Rook, Side: base.White}:   "♖",
	{Variant: base.Bishop, Side: base.White}: "♗",
	{Variant: base.Knight, Side: base.White}: "♘",
	{Variant: base.Pawn, Side: base.White}:   "♙",
	{Variant: base.King, Side: base.Black}:   "♚",
	{Variant: base.Queen, Side: base.Black}:  "♛",
	{Variant: base.Rook, Side: base.Black}:   "♜",
	{Variant: base.Bishop, Side: base.Black}: "♝",
	{Variant: base.Knight, Side: base.Black}: "♞",
	{Variant: base.Pawn, Side: base.Black}:   "♟",
}

type square struct {
	light       bool
	cell        base.Cell
	highlighted bool
}

// layout flattens the canvas visual tree into grid squares.
func layout(c *view.Canvas) [base.BoardSize][base.BoardSize]square {
	var sq [base.BoardSize][base.BoardSize]square
	for _, v := range c.Visuals() {
		if !base.IsValidPoint(v.At) {
			continue
		}
		s := &sq[v.At.Y][v.At.X]
		switch v.Kind {
		case view.KindTile:
			s.light = v.Light
		case view.KindPiece:
			s.cell = base.Cell{Variant: v.Variant, Side: v.Side}
			s.highlighted = v.Highlighted
		}
	}
	return sq
}

// PrintCanvas draws the board with row y=0 on top. cursor may be nil.
// Lines end in \r\n so the output is also correct in raw mode.
func PrintCanvas(w io.Writer, c *view.Canvas, cursor *base.Point) {
	sq := layout(c)
	fmt.Fprint(w, "\r\n    0  1  2  3  4  5  6  7\r\n")
	for y := 0; y < base.BoardSize; y++ {
		fmt.Fprintf(w, " %d ", y)
		for x := 0; x < base.BoardSize; x++ {
			s := sq[y][x]
			g, ok := glyphs[s.cell]
			if !ok {
				g = " "
			}

			bg := darkBg
			if s.light {
				bg = lightBg
			}
			if s.highlighted {
				bg = selectBg
			}
			fg := dimF
			if ok && s.cell.Side == base.White {
				fg = whiteF
				if s.light || s.highlighted {
					fg = blackF
				}
			} else if ok {
				fg = blackF
			}

			left, right := " ", " "
			if cursor != nil && cursor.X == x && cursor.Y == y {
				left, right = "[", "]"
			}
			fmt.Fprintf(w, "%s%s%s%s%s%s", bg, fg, left, g, right, reset)
		}
		fmt.Fprintf(w, " %d\r\n", y)
	}
	fmt.Fprint(w, "    0  1  2  3  4  5  6  7\r\n")
	white, black := c.Score()
	fmt.Fprintf(w, "\r\n %s   %s\r\n", white, black)
}
