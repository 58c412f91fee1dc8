// Package tui is a full-screen terminal board driven by mouse clicks.
package tui

import (
	"fmt"
	"tilechess/src"
	"tilechess/src/base"
	"tilechess/src/logx"
	"tilechess/src/view"

	"github.com/gdamore/tcell/v2"
)

const (
	leftMargin = 4
	topMargin  = 2
	// each square is two cells wide so it looks square
	squareW = 2
	// moves listed beside the board
	recentMoves = 4
)

type Theme struct {
	SquareLight tcell.Color
	SquareDark  tcell.Color
	Selected    tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Label       tcell.Color
}

var DefaultTheme = Theme{
	SquareLight: tcell.NewRGBColor(0xee, 0xee, 0xd2),
	SquareDark:  tcell.NewRGBColor(0x76, 0x96, 0x56),
	Selected:    tcell.NewRGBColor(0xf6, 0xf6, 0x69),
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Label:       tcell.ColorSilver,
}

type TUIProcessing struct {
	session *src.Session
	canvas  *view.Canvas
	logger  logx.Logger
	theme   Theme
	screen  tcell.Screen
	status  string
}

func NewTUI(s *src.Session, c *view.Canvas, l logx.Logger) *TUIProcessing {
	return &TUIProcessing{session: s, canvas: c, logger: l, theme: DefaultTheme}
}

// Run takes over the terminal until q, Esc or Ctrl+C.
func (t *TUIProcessing) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return t.loop(screen)
}

func (t *TUIProcessing) loop(screen tcell.Screen) error {
	t.screen = screen
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)
	t.status = "click a piece, then a square; q quits"
	t.draw()

	var prevButtons tcell.ButtonMask
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			if ev.Rune() == 'f' {
				t.status = "FEN: " + t.session.FEN()
			}
		case *tcell.EventMouse:
			buttons := ev.Buttons()
			// act on press only, tcell repeats the mask while held
			if buttons&tcell.Button1 != 0 && prevButtons&tcell.Button1 == 0 {
				x, y := ev.Position()
				t.click(x, y)
			}
			prevButtons = buttons
		}
		t.draw()
	}
}

// CellToPoint maps a screen cell to a board point.
func CellToPoint(col, row int) (base.Point, bool) {
	if col < leftMargin || row < topMargin {
		return base.Point{}, false
	}
	p := base.Point{X: (col - leftMargin) / squareW, Y: row - topMargin}
	return p, base.IsValidPoint(p)
}

func (t *TUIProcessing) click(col, row int) {
	p, ok := CellToPoint(col, row)
	if !ok {
		return
	}
	o := t.session.Click(t.canvas.HitAt(p))
	t.canvas.DrainEffects()
	if o == src.Ignored {
		return
	}
	t.status = o.String()
	if sel := t.session.Selected(); sel != nil {
		t.status = fmt.Sprintf("%s: %s %s at %v", o, sel.Side, sel.Variant, sel.At)
	}
	t.logger.Debugf("tui click %v -> %v", p, o)
}

func (t *TUIProcessing) draw() {
	s := t.screen
	s.Clear()
	label := tcell.StyleDefault.Foreground(t.theme.Label)

	for x := 0; x < base.BoardSize; x++ {
		drawText(s, leftMargin+x*squareW, topMargin-1, label, fmt.Sprintf("%d", x))
	}
	for y := 0; y < base.BoardSize; y++ {
		drawText(s, leftMargin-2, topMargin+y, label, fmt.Sprintf("%d", y))
	}

	for _, v := range t.canvas.Visuals() {
		if v.Kind != view.KindTile {
			continue
		}
		bg := t.theme.SquareDark
		if v.Light {
			bg = t.theme.SquareLight
		}
		col, row := leftMargin+v.At.X*squareW, topMargin+v.At.Y
		st := tcell.StyleDefault.Background(bg)
		s.SetContent(col, row, ' ', nil, st)
		s.SetContent(col+1, row, ' ', nil, st)
	}
	for _, v := range t.canvas.Visuals() {
		if v.Kind != view.KindPiece || !base.IsValidPoint(v.At) {
			continue
		}
		col, row := leftMargin+v.At.X*squareW, topMargin+v.At.Y
		_, _, st, _ := s.GetContent(col, row)
		_, bg, _ := st.Decompose()
		if v.Highlighted {
			bg = t.theme.Selected
		}
		fg := t.theme.Black
		if v.Side == base.White {
			fg = t.theme.White
		}
		r := base.VariantRune(v.Variant, v.Side)
		s.SetContent(col, row, r, nil, tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true))
		s.SetContent(col+1, row, ' ', nil, tcell.StyleDefault.Background(bg))
	}

	white, black := t.canvas.Score()
	panel := leftMargin + base.BoardSize*squareW + 4
	moves := t.session.History().Moves()
	if len(moves) > recentMoves {
		moves = moves[len(moves)-recentMoves:]
	}
	first := t.session.History().Len() - len(moves) + 1
	for i, m := range moves {
		drawText(s, panel, topMargin+2+i, label, fmt.Sprintf("%d. %s", first+i, m))
	}
	drawText(s, leftMargin+base.BoardSize*squareW+4, topMargin, label, black)
	drawText(s, leftMargin+base.BoardSize*squareW+4, topMargin+base.BoardSize-1, label, white)
	drawText(s, leftMargin, topMargin+base.BoardSize+1, tcell.StyleDefault, t.status)
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
