package glayout

import (
	"tilechess/src"
	"tilechess/src/view"
)

// Route turns a click at a window pixel into a session click. It reports
// false when the pixel is off the board.
func (l Layout) Route(s *src.Session, c *view.Canvas, px, py int) (src.Outcome, bool) {
	p, ok := l.PixelToPoint(px, py)
	if !ok {
		return src.Ignored, false
	}
	return s.Click(c.HitAt(p)), true
}
