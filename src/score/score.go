package score

import (
	"fmt"
	"tilechess/src/base"
)

// Tracker holds the remaining-piece counters. Nothing in the game decrements
// them, so they stay at their starting value.
type Tracker struct {
	white int
	black int
}

func New() *Tracker {
	return &Tracker{white: base.StartingPieces, black: base.StartingPieces}
}

func (t *Tracker) White() int {
	return t.white
}

func (t *Tracker) Black() int {
	return t.black
}

func (t *Tracker) Of(s base.Side) int {
	if s == base.White {
		return t.white
	}
	return t.black
}

// Lines returns the two display strings.
func (t *Tracker) Lines() (white, black string) {
	return fmt.Sprintf("White: %d", t.white), fmt.Sprintf("Black: %d", t.black)
}
