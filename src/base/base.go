package base

import (
	"errors"
	"fmt"
	"math"
)

const (
	BoardSize int = 8
	// starting number of pieces per side
	StartingPieces int = 16
	// vertical offset of piece visuals above the tile plane
	PieceLift float64 = 0.1
	DefaultPitch float64 = 1.0
)

var (
	ErrOutOfRange         = errors.New("coordinate out of range")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateOccupant  = errors.New("tile already occupied")
	ErrUnknownVariant     = errors.New("unknown piece variant")
	ErrAlreadyInitialized = errors.New("board already initialized")
	ErrNotInitialized     = errors.New("board not initialized")
	ErrSessionClosed      = errors.New("session closed")
)

type Side uint8

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

type Variant uint8

const (
	Pawn Variant = iota + 1
	Rook
	Knight
	Bishop
	Queen
	King
)

func (v Variant) String() string {
	switch v {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return fmt.Sprintf("variant(%d)", v)
	}
}

func (v Variant) Valid() bool {
	return v >= Pawn && v <= King
}

// upper case for white, lower case for black, '.' for anything else
func VariantRune(v Variant, s Side) rune {
	var r rune
	switch v {
	case Pawn:
		r = 'P'
	case Rook:
		r = 'R'
	case Knight:
		r = 'N'
	case Bishop:
		r = 'B'
	case Queen:
		r = 'Q'
	case King:
		r = 'K'
	default:
		return '.'
	}
	if s == Black {
		r += 'a' - 'A'
	}
	return r
}

// BackRank is the placement order of the back pieces from x=0 to x=7.
var BackRank = [8]Variant{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func IsValidPoint(p Point) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Vec3 is a position in presentation world units.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// ValidPitch reports whether pitch is a usable tile spacing: finite and positive.
func ValidPitch(pitch float64) bool {
	return !math.IsNaN(pitch) && !math.IsInf(pitch, 0) && pitch > 0
}

// NormalizePitch replaces an unusable pitch with DefaultPitch.
func NormalizePitch(pitch float64) float64 {
	if !ValidPitch(pitch) {
		return DefaultPitch
	}
	return pitch
}

func TilePos(p Point, pitch float64) Vec3 {
	return Vec3{X: float64(p.X) * pitch, Y: 0, Z: float64(p.Y) * pitch}
}

func PiecePos(p Point, pitch float64) Vec3 {
	return Vec3{X: float64(p.X) * pitch, Y: PieceLift, Z: float64(p.Y) * pitch}
}

// Handle is an opaque reference to a presentation-layer object. Zero means none.
type Handle uint32

const NoHandle Handle = 0

type HitKind uint8

const (
	HitNone HitKind = iota
	HitPiece
	HitTile
)

func (k HitKind) String() string {
	switch k {
	case HitPiece:
		return "piece"
	case HitTile:
		return "tile"
	default:
		return "none"
	}
}

// Hit is a click already resolved by the input layer to a visual.
type Hit struct {
	Kind   HitKind
	Handle Handle
}

// Cell is a flat view of one grid square used for drawing.
type Cell struct {
	Variant Variant // zero when empty
	Side    Side
}

func (c Cell) Empty() bool {
	return c.Variant == 0
}

type Grid [BoardSize][BoardSize]Cell // [y][x]

// Piece is one movable unit. The variant tag carries no movement behaviour.
type Piece struct {
	Variant Variant
	Side    Side
	At      Point
	Pos     Vec3 // world position of the visual
	Handle  Handle
}

func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s@%s", p.Side, p.Variant, p.At)
}
