package selection

import (
	"tilechess/src/base"
	"tilechess/src/view"
)

type State uint8

const (
	Idle State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "idle"
}

type Transition uint8

const (
	Started    Transition = iota + 1 // Idle -> Selected(p)
	Cleared                          // Selected(p) -> Idle
	Superseded                       // Selected(q) -> Selected(p)
)

func (t Transition) String() string {
	switch t {
	case Started:
		return "started"
	case Cleared:
		return "cleared"
	case Superseded:
		return "superseded"
	default:
		return "none"
	}
}

// Controller holds at most one selected piece.
type Controller struct {
	presenter view.Presenter
	selected  *base.Piece
}

func NewController(p view.Presenter) *Controller {
	return &Controller{presenter: p}
}

func (c *Controller) State() State {
	if c.selected == nil {
		return Idle
	}
	return Selected
}

func (c *Controller) Selected() *base.Piece {
	return c.selected
}

// HitPiece applies a piece click and reports which transition fired.
func (c *Controller) HitPiece(p *base.Piece) Transition {
	if p == nil {
		return 0
	}
	if c.selected != nil {
		prev := c.selected
		c.presenter.Restore(prev.Handle)
		if prev == p {
			c.selected = nil
			return Cleared
		}
		c.start(p)
		return Superseded
	}
	c.start(p)
	return Started
}

func (c *Controller) start(p *base.Piece) {
	c.selected = p
	c.presenter.Highlight(p.Handle)
	c.presenter.SpawnEffect(p.Pos)
	c.presenter.PlaySelectSound(p.Handle)
}

// Reset drops the selection without emitting anything.
func (c *Controller) Reset() {
	c.selected = nil
}
