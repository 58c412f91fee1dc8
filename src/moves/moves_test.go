package moves

import (
	"testing"
	"tilechess/src/base"
	"tilechess/src/board"
	"tilechess/src/pieces"
	"tilechess/src/view"

	"github.com/google/go-cmp/cmp"
)

type fixture struct {
	board    *board.Board
	registry *pieces.Registry
	canvas   *view.Canvas
	eval     *Evaluator
}

func newFixture(t *testing.T, pitch float64) *fixture {
	t.Helper()
	b := board.New()
	if err := b.Initialize(pitch); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	c := view.NewCanvas()
	for _, tile := range b.Tiles() {
		tile.Handle = c.SpawnTile(tile.At, tile.Light(), tile.Pos)
	}
	r := pieces.NewRegistry(b)
	return &fixture{board: b, registry: r, canvas: c, eval: NewEvaluator(b, r, c)}
}

func (f *fixture) spawn(t *testing.T, v base.Variant, s base.Side, x, y int) *base.Piece {
	t.Helper()
	p, err := f.registry.Spawn(v, s, x, y)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	tile, _ := f.board.TileAt(x, y)
	p.Handle = f.canvas.SpawnPiece(v, s, tile.Handle, p.Pos)
	return p
}

func (f *fixture) tile(t *testing.T, x, y int) *board.Tile {
	t.Helper()
	tile, err := f.board.TileAt(x, y)
	if err != nil {
		t.Fatalf("TileAt(%d,%d): %v", x, y, err)
	}
	return tile
}

func TestAcceptanceBoundary(t *testing.T) {
	tests := []struct {
		name   string
		pitch  float64
		to     base.Point
		accept bool
	}{
		{"dz -2 straight", 1, base.Point{X: 3, Y: 2}, true},
		{"dz +2 straight", 1, base.Point{X: 3, Y: 6}, true},
		{"dz -1", 1, base.Point{X: 3, Y: 3}, true},
		{"dz 0 sideways", 1, base.Point{X: 4, Y: 4}, true},
		{"dz -2 far sideways", 1, base.Point{X: 7, Y: 2}, true},
		{"dz +2 far sideways", 1, base.Point{X: 0, Y: 6}, true},
		{"dz 0 across the board", 1, base.Point{X: 0, Y: 4}, true},
		{"dz -3", 1, base.Point{X: 3, Y: 1}, false},
		{"dz +3", 1, base.Point{X: 3, Y: 7}, false},
		{"dz -3 sideways", 1, base.Point{X: 6, Y: 1}, false},
		{"dz -4", 1, base.Point{X: 3, Y: 0}, false},
		{"pitch 2 dz -2 tiles", 2, base.Point{X: 5, Y: 2}, true},
		{"pitch 2 dz +3 tiles", 2, base.Point{X: 5, Y: 7}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.pitch)
			p := f.spawn(t, base.Pawn, base.White, 3, 4)
			target := f.tile(t, tt.to.X, tt.to.Y)

			res := f.eval.Evaluate(p, target)
			if res.Accept != tt.accept {
				t.Fatalf("Evaluate to %v: accept = %v; want %v", tt.to, res.Accept, tt.accept)
			}
			if tt.accept && p.At != tt.to {
				t.Errorf("piece at %v; want %v", p.At, tt.to)
			}
			if !tt.accept && p.At != (base.Point{X: 3, Y: 4}) {
				t.Errorf("rejected move relocated piece to %v", p.At)
			}
		})
	}
}

func TestOccupiedTargetRejected(t *testing.T) {
	f := newFixture(t, 1)
	p := f.spawn(t, base.Queen, base.White, 3, 7)
	q := f.spawn(t, base.Pawn, base.White, 3, 6)
	f.spawn(t, base.Pawn, base.Black, 4, 6)

	for _, to := range []base.Point{{X: 3, Y: 6}, {X: 4, Y: 6}, {X: 3, Y: 7}} {
		if res := f.eval.Evaluate(p, f.tile(t, to.X, to.Y)); res.Accept {
			t.Errorf("move onto occupied %v accepted", to)
		}
	}
	if f.tile(t, 3, 6).Piece != q || p.At != (base.Point{X: 3, Y: 7}) {
		t.Errorf("rejected move mutated the board")
	}
}

func TestNilArgumentsRejected(t *testing.T) {
	f := newFixture(t, 1)
	p := f.spawn(t, base.Rook, base.Black, 0, 0)
	if f.eval.Evaluate(p, nil).Accept {
		t.Errorf("nil target accepted")
	}
	if f.eval.Evaluate(nil, f.tile(t, 0, 1)).Accept {
		t.Errorf("nil piece accepted")
	}
}

func TestPostMoveConsistency(t *testing.T) {
	f := newFixture(t, 1)
	p := f.spawn(t, base.Pawn, base.White, 3, 6)
	f.canvas.Highlight(p.Handle)
	origin := f.tile(t, 3, 6)
	target := f.tile(t, 3, 4)

	if res := f.eval.Evaluate(p, target); !res.Accept {
		t.Fatalf("move (3,6)->(3,4) rejected")
	}
	if target.Piece != p {
		t.Errorf("target occupant = %v; want %v", target.Piece, p)
	}
	if p.At != target.At {
		t.Errorf("piece at %v; want %v", p.At, target.At)
	}
	if origin.Piece != nil {
		t.Errorf("origin still occupied by %v", origin.Piece)
	}
	if p.Pos != target.Pos {
		t.Errorf("piece world position %v; want %v", p.Pos, target.Pos)
	}

	v, ok := f.canvas.Visual(p.Handle)
	if !ok {
		t.Fatalf("piece visual missing")
	}
	want := view.Visual{
		Handle:  p.Handle,
		Kind:    view.KindPiece,
		At:      target.At,
		Variant: base.Pawn,
		Side:    base.White,
		Pos:     target.Pos,
		Parent:  target.Handle,
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("visual mismatch (-want +got):\n%s", diff)
	}

	seen := map[*base.Piece]base.Point{}
	for _, tile := range f.board.Tiles() {
		if tile.Piece == nil {
			continue
		}
		if prev, dup := seen[tile.Piece]; dup {
			t.Errorf("piece referenced by %v and %v", prev, tile.At)
		}
		seen[tile.Piece] = tile.At
	}
}

func TestRepeatedMovesUseCurrentPosition(t *testing.T) {
	f := newFixture(t, 1)
	p := f.spawn(t, base.Knight, base.Black, 1, 0)

	for _, y := range []int{2, 4, 6} {
		if res := f.eval.Evaluate(p, f.tile(t, 1, y)); !res.Accept {
			t.Fatalf("step to (1,%d) rejected", y)
		}
	}
	if res := f.eval.Evaluate(p, f.tile(t, 1, 1)); res.Accept {
		t.Errorf("five-tile jump back accepted")
	}
}
