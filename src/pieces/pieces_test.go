package pieces

import (
	"errors"
	"testing"
	"tilechess/src/base"
	"tilechess/src/board"

	"github.com/google/go-cmp/cmp"
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	b := board.New()
	if err := b.Initialize(1); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return b
}

func TestNewFactory(t *testing.T) {
	for _, v := range []base.Variant{base.Pawn, base.Rook, base.Knight, base.Bishop, base.Queen, base.King} {
		p, err := New(v, base.Black, base.Point{X: 1, Y: 2})
		if err != nil {
			t.Fatalf("New(%v): %v", v, err)
		}
		if p.Variant != v || p.Side != base.Black || p.At != (base.Point{X: 1, Y: 2}) {
			t.Errorf("New(%v) = %+v", v, p)
		}
	}
	for _, v := range []base.Variant{0, base.King + 1} {
		if _, err := New(v, base.White, base.Point{}); !errors.Is(err, base.ErrUnknownVariant) {
			t.Errorf("New(%v): err = %v; want ErrUnknownVariant", v, err)
		}
	}
}

func TestSpawn(t *testing.T) {
	b := newBoard(t)
	r := NewRegistry(b)

	p, err := r.Spawn(base.Queen, base.White, 3, 7)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	want := &base.Piece{
		Variant: base.Queen,
		Side:    base.White,
		At:      base.Point{X: 3, Y: 7},
		Pos:     base.Vec3{X: 3, Y: base.PieceLift, Z: 7},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("spawned piece mismatch (-want +got):\n%s", diff)
	}
	tile, _ := b.TileAt(3, 7)
	if tile.Piece != p {
		t.Errorf("tile (3,7) does not reference the spawned piece")
	}

	if _, err := r.Spawn(base.Pawn, base.Black, 3, 7); !errors.Is(err, base.ErrDuplicateOccupant) {
		t.Errorf("Spawn on occupied tile: err = %v; want ErrDuplicateOccupant", err)
	}
	if _, err := r.Spawn(base.Pawn, base.Black, 8, 0); !errors.Is(err, base.ErrOutOfRange) {
		t.Errorf("Spawn off board: err = %v; want ErrOutOfRange", err)
	}
	if _, err := r.Spawn(0, base.Black, 0, 0); !errors.Is(err, base.ErrUnknownVariant) {
		t.Errorf("Spawn unknown variant: err = %v; want ErrUnknownVariant", err)
	}
	if got := len(r.Pieces()); got != 1 {
		t.Errorf("registry holds %d pieces; want 1", got)
	}
	if tile, _ := b.TileAt(0, 0); tile.Piece != nil {
		t.Errorf("failed spawn left an occupant at (0,0)")
	}
}

func TestFindByHandle(t *testing.T) {
	r := NewRegistry(newBoard(t))
	a, _ := r.Spawn(base.Rook, base.White, 0, 7)
	c, _ := r.Spawn(base.Rook, base.Black, 0, 0)
	a.Handle, c.Handle = 7, 9

	got, err := r.FindByHandle(9)
	if err != nil {
		t.Fatalf("FindByHandle: %v", err)
	}
	if got != c {
		t.Errorf("FindByHandle(9) = %v; want %v", got, c)
	}
	for _, h := range []base.Handle{base.NoHandle, 8} {
		if _, err := r.FindByHandle(h); !errors.Is(err, base.ErrNotFound) {
			t.Errorf("FindByHandle(%d): err = %v; want ErrNotFound", h, err)
		}
	}
}

func TestRelocateIsPureSetter(t *testing.T) {
	b := newBoard(t)
	r := NewRegistry(b)
	p, _ := r.Spawn(base.Knight, base.Black, 1, 0)

	r.Relocate(p, 5, 5)
	if p.At != (base.Point{X: 5, Y: 5}) {
		t.Errorf("At = %v; want (5,5)", p.At)
	}
	origin, _ := b.TileAt(1, 0)
	if origin.Piece != p {
		t.Errorf("Relocate touched the origin tile")
	}
	target, _ := b.TileAt(5, 5)
	if target.Piece != nil {
		t.Errorf("Relocate touched the target tile")
	}
}

func TestCountAndClear(t *testing.T) {
	b := newBoard(t)
	r := NewRegistry(b)
	for x := 0; x < 3; x++ {
		if _, err := r.Spawn(base.Pawn, base.White, x, 6); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.Spawn(base.Pawn, base.Black, 0, 1); err != nil {
		t.Fatal(err)
	}
	if got := r.Count(base.White); got != 3 {
		t.Errorf("Count(White) = %d; want 3", got)
	}
	if got := r.Count(base.Black); got != 1 {
		t.Errorf("Count(Black) = %d; want 1", got)
	}

	r.Clear()
	if len(r.Pieces()) != 0 {
		t.Errorf("Clear left %d pieces", len(r.Pieces()))
	}
	for _, tile := range b.Tiles() {
		if tile.Piece != nil {
			t.Errorf("tile %v still occupied after Clear", tile.At)
		}
	}
}
