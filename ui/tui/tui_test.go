package tui

import (
	"strings"
	"testing"
	"tilechess/src"
	"tilechess/src/base"
	"tilechess/src/logx"
	"tilechess/src/view"

	"github.com/gdamore/tcell/v2"
)

func TestCellToPoint(t *testing.T) {
	tests := []struct {
		col, row int
		want     base.Point
		ok       bool
	}{
		{leftMargin, topMargin, base.Point{X: 0, Y: 0}, true},
		{leftMargin + 1, topMargin, base.Point{X: 0, Y: 0}, true},
		{leftMargin + 2, topMargin + 3, base.Point{X: 1, Y: 3}, true},
		{leftMargin + 15, topMargin + 7, base.Point{X: 7, Y: 7}, true},
		{leftMargin + 16, topMargin, base.Point{}, false},
		{leftMargin - 1, topMargin, base.Point{}, false},
		{leftMargin, topMargin + 8, base.Point{}, false},
	}
	for _, tt := range tests {
		got, ok := CellToPoint(tt.col, tt.row)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("CellToPoint(%d,%d) = %v,%v; want %v,%v", tt.col, tt.row, got, ok, tt.want, tt.ok)
		}
	}
}

func cellOf(p base.Point) (int, int) {
	return leftMargin + p.X*squareW, topMargin + p.Y
}

func TestLoopMovesPawnWithMouse(t *testing.T) {
	c := view.NewCanvas()
	s := src.NewSession(c, logx.NewNop())
	if err := s.CreateClassic(1); err != nil {
		t.Fatalf("CreateClassic: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)

	px, py := cellOf(base.Point{X: 3, Y: 6})
	tx, ty := cellOf(base.Point{X: 3, Y: 4})
	screen.InjectMouse(px, py, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(px, py, tcell.ButtonNone, tcell.ModNone)
	screen.InjectMouse(tx, ty, tcell.Button1, tcell.ModNone)
	screen.InjectMouse(tx, ty, tcell.ButtonNone, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ui := NewTUI(s, c, logx.NewNop())
	if err := ui.loop(screen); err != nil {
		t.Fatalf("loop: %v", err)
	}

	tile, _ := s.Board().TileAt(3, 4)
	if tile.Piece == nil || tile.Piece.Variant != base.Pawn {
		t.Fatalf("pawn did not reach (3,4)")
	}
	if !strings.HasPrefix(ui.status, "moved") {
		t.Errorf("status = %q; want moved", ui.status)
	}

	mainc, _, _, _ := screen.GetContent(tx, ty)
	if mainc != 'P' {
		t.Errorf("screen shows %q at (3,4); want 'P'", mainc)
	}
	mainc, _, _, _ = screen.GetContent(px, py)
	if mainc != ' ' {
		t.Errorf("screen shows %q at (3,6); want blank", mainc)
	}

	want := "1. P(3,6)-(3,4)"
	if got := rowText(screen, leftMargin+16+4, topMargin+2, len(want)); got != want {
		t.Errorf("move list shows %q; want %q", got, want)
	}
}

func rowText(s tcell.SimulationScreen, x, y, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		r, _, _, _ := s.GetContent(x+i, y)
		b.WriteRune(r)
	}
	return b.String()
}
