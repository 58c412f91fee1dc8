package src

import (
	"fmt"
	"io"
	"tilechess/src/base"
	"tilechess/src/board"
	"tilechess/src/logic/convert/convfen"
	"tilechess/src/logic/history"
	"tilechess/src/logx"
	"tilechess/src/moves"
	"tilechess/src/pieces"
	"tilechess/src/score"
	"tilechess/src/selection"
	"tilechess/src/view"

	petname "github.com/dustinkirkland/golang-petname"
	"go.uber.org/multierr"
)

type Outcome uint8

const (
	Ignored Outcome = iota
	Selected
	Deselected
	Reselected
	Moved
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Reselected:
		return "reselected"
	case Moved:
		return "moved"
	case Rejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Session is one game: a board, its pieces, the selection and the score.
// It is driven from a single input loop and is not safe for concurrent use.
type Session struct {
	name      string
	board     *board.Board
	registry  *pieces.Registry
	selection *selection.Controller
	evaluator *moves.Evaluator
	score     *score.Tracker
	history   *history.History
	presenter view.Presenter
	logger    logx.Logger
	closed    bool
}

// at first use Create* methods
func NewSession(p view.Presenter, logger logx.Logger) *Session {
	name := petname.Generate(2, "-")
	b := board.New()
	reg := pieces.NewRegistry(b)
	return &Session{
		name:      name,
		board:     b,
		registry:  reg,
		selection: selection.NewController(p),
		evaluator: moves.NewEvaluator(b, reg, p),
		score:     score.New(),
		history:   history.NewHistory(),
		presenter: p,
		logger:    logger.Named(name),
	}
}

func (s *Session) Name() string {
	return s.name
}

// CreateClassic lays out the standard starting position.
// A session whose setup fails is closed and must be discarded.
func (s *Session) CreateClassic(pitch float64) error {
	s.logger.Debug("create classic game")
	return s.layout(pitch, func() error {
		for x := 0; x < base.BoardSize; x++ {
			if err := s.spawn(base.Pawn, base.Black, x, 1); err != nil {
				return err
			}
			if err := s.spawn(base.Pawn, base.White, x, 6); err != nil {
				return err
			}
		}
		for x, v := range base.BackRank {
			if err := s.spawn(v, base.Black, x, 0); err != nil {
				return err
			}
			if err := s.spawn(v, base.White, x, base.BoardSize-1); err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateFromFEN lays out the placement field of fen instead of the standard
// position. Score counters still start at their fixed value. A bad FEN leaves
// the session untouched; a failure after the tiles exist closes it.
func (s *Session) CreateFromFEN(fen string, pitch float64) error {
	s.logger.Debugf("create game by FEN: %v", fen)
	if s.closed {
		return base.ErrSessionClosed
	}
	g, err := convfen.ConvertFENToGrid(fen)
	if err != nil {
		return err
	}
	return s.layout(pitch, func() error {
		for y := 0; y < base.BoardSize; y++ {
			for x := 0; x < base.BoardSize; x++ {
				if c := g[y][x]; !c.Empty() {
					if err := s.spawn(c.Variant, c.Side, x, y); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// layout builds the tiles, runs place and publishes the score. Once the
// board is initialized a failing place leaves a partial board, so the
// session is shut down.
func (s *Session) layout(pitch float64, place func() error) error {
	if err := s.createTiles(pitch); err != nil {
		return err
	}
	if err := place(); err != nil {
		s.logger.Errorf("setup failed: %v", err)
		if cerr := s.Close(); cerr != nil {
			err = multierr.Append(err, cerr)
		}
		return fmt.Errorf("create game %s: %w", s.name, err)
	}
	s.updateScoreDisplay()
	return nil
}

func (s *Session) createTiles(pitch float64) error {
	if s.closed {
		return base.ErrSessionClosed
	}
	if err := s.board.Initialize(pitch); err != nil {
		return err
	}
	for _, t := range s.board.Tiles() {
		t.Handle = s.presenter.SpawnTile(t.At, t.Light(), t.Pos)
	}
	return nil
}

func (s *Session) spawn(v base.Variant, side base.Side, x, y int) error {
	p, err := s.registry.Spawn(v, side, x, y)
	if err != nil {
		return fmt.Errorf("place piece: %w", err)
	}
	tile, err := s.board.TileAt(x, y)
	if err != nil {
		return err
	}
	p.Handle = s.presenter.SpawnPiece(v, side, tile.Handle, p.Pos)
	return nil
}

func (s *Session) updateScoreDisplay() {
	white, black := s.score.Lines()
	s.presenter.ShowScore(white, black)
}

// Click handles one resolved click. Clicks that change nothing are reported
// as Ignored or Rejected and never surface as errors.
func (s *Session) Click(hit base.Hit) Outcome {
	if s.closed || !s.board.Ready() {
		s.logger.Debugf("click %v %d on inactive session", hit.Kind, hit.Handle)
		return Ignored
	}
	switch hit.Kind {
	case base.HitPiece:
		return s.clickPiece(hit.Handle)
	case base.HitTile:
		return s.clickTile(hit.Handle)
	default:
		return Ignored
	}
}

func (s *Session) clickPiece(h base.Handle) Outcome {
	p, err := s.registry.FindByHandle(h)
	if err != nil {
		s.logger.Debugf("piece click ignored: %v", err)
		return Ignored
	}
	switch s.selection.HitPiece(p) {
	case selection.Started:
		s.logger.Debugf("select %v", p)
		return Selected
	case selection.Cleared:
		s.logger.Debugf("deselect %v", p)
		return Deselected
	case selection.Superseded:
		s.logger.Debugf("switch selection to %v", p)
		return Reselected
	default:
		return Ignored
	}
}

func (s *Session) clickTile(h base.Handle) Outcome {
	p := s.selection.Selected()
	if p == nil {
		return Ignored
	}
	tile, err := s.board.FindTileByHandle(h)
	if err != nil {
		s.logger.Debugf("tile click ignored: %v", err)
		return Ignored
	}
	from := p.At
	if res := s.evaluator.Evaluate(p, tile); !res.Accept {
		s.logger.Debugf("reject move %v -> %v", p, tile.At)
		return Rejected
	}
	s.history.Push(p, from)
	last, _ := s.history.Last()
	s.logger.Infof("move %d: %s", s.history.Len(), last)
	return Moved
}

// History lists committed moves in order.
func (s *Session) History() *history.History {
	return s.history
}

func (s *Session) Selected() *base.Piece {
	return s.selection.Selected()
}

func (s *Session) SelectionState() selection.State {
	return s.selection.State()
}

func (s *Session) Board() *board.Board {
	return s.board
}

func (s *Session) Registry() *pieces.Registry {
	return s.registry
}

func (s *Session) Score() *score.Tracker {
	return s.score
}

func (s *Session) CurrentBoard() base.Grid {
	return s.board.Grid()
}

// return placement FEN of this game
func (s *Session) FEN() string {
	return convfen.ConvertGridToFEN(s.board.Grid())
}

// Close ends the session. The presenter is closed too when it is an io.Closer.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.selection.Reset()
	s.registry.Clear()
	s.history.Clear()

	var err error
	if c, ok := s.presenter.(io.Closer); ok {
		err = multierr.Append(err, c.Close())
	}
	if syncErr := s.logger.Sync(); syncErr != nil {
		err = multierr.Append(err, fmt.Errorf("sync logger: %w", syncErr))
	}
	if err != nil {
		return fmt.Errorf("close session %s: %w", s.name, err)
	}
	return nil
}
