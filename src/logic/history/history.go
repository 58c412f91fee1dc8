package history

import (
	"fmt"
	"strings"
	"tilechess/src/base"
)

// append-only log of committed moves
type History struct {
	moves []MoveEntry
}

type MoveEntry struct {
	Variant  base.Variant
	Side     base.Side
	From, To base.Point
}

// String gives the short form used in logs, e.g. "P(3,6)-(3,4)".
func (e MoveEntry) String() string {
	return fmt.Sprintf("%c%s-%s", base.VariantRune(e.Variant, e.Side), e.From, e.To)
}

func NewHistory() *History {
	return &History{moves: make([]MoveEntry, 0)}
}

func (h *History) Len() int { return len(h.moves) }

func (h *History) Moves() []MoveEntry {
	out := make([]MoveEntry, len(h.moves))
	copy(out, h.moves)
	return out
}

// Push records a move of p that has already been committed.
func (h *History) Push(p *base.Piece, from base.Point) {
	h.moves = append(h.moves, MoveEntry{
		Variant: p.Variant,
		Side:    p.Side,
		From:    from,
		To:      p.At,
	})
}

// Last returns the most recent move.
func (h *History) Last() (MoveEntry, bool) {
	if len(h.moves) == 0 {
		return MoveEntry{}, false
	}
	return h.moves[len(h.moves)-1], true
}

// returned string with all moves
// example: "1. P(3,6)-(3,4) 2. n(1,0)-(2,2)"
func (h *History) Notation() string {
	if h == nil || h.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, m := range h.moves {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%d. %s", i+1, m))
	}
	return b.String()
}

func (h *History) Clear() {
	h.moves = h.moves[:0]
}
