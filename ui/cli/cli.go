package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"tilechess/src"
	"tilechess/src/base"
	"tilechess/src/view"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
)

type CLIProcessing struct {
	session *src.Session
	canvas  *view.Canvas
	in      io.Reader
	out     io.Writer
	cursor  base.Point
}

func NewCLI(s *src.Session, c *view.Canvas) *CLIProcessing {
	return &CLIProcessing{
		session: s,
		canvas:  c,
		in:      os.Stdin,
		out:     os.Stdout,
		cursor:  base.Point{X: 0, Y: base.BoardSize - 1},
	}
}

// raw processing
// - arrow keys or h/j/k/l move the cursor
// - Enter or space clicks the square under the cursor
// - f prints the placement FEN
// - q, Esc or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return c.RunLineMode()
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	return c.readKeys(bufio.NewReader(c.in))
}

// readKeys runs the raw key loop. A terminal delivers an escape sequence in
// one read, so an Esc with nothing buffered behind it is a lone Esc key.
func (c *CLIProcessing) readKeys(r *bufio.Reader) error {
	c.redraw(true, "arrows move, Enter clicks, f shows FEN, q or Esc quits")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case 3, 'q', 'Q': // Ctrl+C
			fmt.Fprint(c.out, "\r\n")
			return nil
		case '\r', '\n', ' ':
			o := c.clickAt(c.cursor)
			c.redraw(true, c.describe(o))
			continue
		case 'f', 'F':
			c.redraw(true, infoColor.Sprintf("FEN: %s", c.session.FEN()))
			continue
		case 'h':
			c.moveCursor(-1, 0)
		case 'l':
			c.moveCursor(1, 0)
		case 'k':
			c.moveCursor(0, -1)
		case 'j':
			c.moveCursor(0, 1)
		case 0x1b: // escape sequence, possibly an arrow
			if r.Buffered() == 0 {
				fmt.Fprint(c.out, "\r\n")
				return nil
			}
			b1, err := r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			switch b2 {
			case 'A':
				c.moveCursor(0, -1)
			case 'B':
				c.moveCursor(0, 1)
			case 'C':
				c.moveCursor(1, 0)
			case 'D':
				c.moveCursor(-1, 0)
			default:
				continue
			}
		default:
			continue
		}
		c.redraw(true, "")
	}
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw(false, "Enter 'x y' to click a square, 'fen', 'score' or 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "q", "Q", "quit":
			return nil
		case "fen":
			fmt.Fprintln(c.out, infoColor.Sprintf("FEN: %s", c.session.FEN()))
			continue
		case "moves", "history":
			if c.session.History().Len() == 0 {
				fmt.Fprintln(c.out, "no moves yet")
			} else {
				fmt.Fprintln(c.out, c.session.History().Notation())
			}
			continue
		case "score":
			white, black := c.canvas.Score()
			fmt.Fprintf(c.out, "%s %s\n", white, black)
			for _, side := range []base.Side{base.White, base.Black} {
				fmt.Fprintf(c.out, "%s: %d on board, counter %d\n",
					side, c.session.Registry().Count(side), c.session.Score().Of(side))
			}
			continue
		case "help":
			fmt.Fprintln(c.out, "commands: x y | click x y | fen | moves | score | q")
			continue
		case "click":
			fields = fields[1:]
		}

		p, err := parsePoint(fields)
		if err != nil {
			fmt.Fprintln(c.out, warnColor.Sprintf("bad input %q: %v", line, err))
			continue
		}
		o := c.clickAt(p)
		c.redraw(false, c.describe(o))
	}
	return scanner.Err()
}

func parsePoint(fields []string) (base.Point, error) {
	if len(fields) != 2 {
		return base.Point{}, fmt.Errorf("want two coordinates")
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return base.Point{}, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return base.Point{}, err
	}
	p := base.Point{X: x, Y: y}
	if !base.IsValidPoint(p) {
		return base.Point{}, base.ErrOutOfRange
	}
	return p, nil
}

func (c *CLIProcessing) moveCursor(dx, dy int) {
	next := base.Point{X: c.cursor.X + dx, Y: c.cursor.Y + dy}
	if base.IsValidPoint(next) {
		c.cursor = next
	}
}

func (c *CLIProcessing) clickAt(p base.Point) src.Outcome {
	return c.session.Click(c.canvas.HitAt(p))
}

func (c *CLIProcessing) describe(o src.Outcome) string {
	var sound bool
	for _, e := range c.canvas.DrainEffects() {
		if e.Kind == view.EffectSound {
			sound = true
		}
	}
	msg := o.String()
	if sel := c.session.Selected(); sel != nil {
		msg = fmt.Sprintf("%s (selected %s %s at %v)", msg, sel.Side, sel.Variant, sel.At)
	}
	switch o {
	case src.Moved, src.Selected, src.Reselected:
		msg = okColor.Sprint(msg)
	case src.Rejected:
		msg = warnColor.Sprint(msg)
	}
	if sound {
		msg += "\a"
	}
	return msg
}

func (c *CLIProcessing) redraw(withCursor bool, status string) {
	if withCursor {
		fmt.Fprint(c.out, clearHome)
		cur := c.cursor
		PrintCanvas(c.out, c.canvas, &cur)
	} else {
		PrintCanvas(c.out, c.canvas, nil)
	}
	if status != "" {
		fmt.Fprintf(c.out, " %s\r\n", status)
	}
}
