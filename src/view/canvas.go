package view

import "tilechess/src/base"

type VisualKind uint8

const (
	KindTile VisualKind = iota + 1
	KindPiece
)

// Visual is the canvas record of one presented object.
type Visual struct {
	Handle      base.Handle
	Kind        VisualKind
	At          base.Point // grid point of a tile; pieces follow their parent tile
	Light       bool
	Variant     base.Variant
	Side        base.Side
	Pos         base.Vec3
	Parent      base.Handle
	Highlighted bool
}

type EffectKind uint8

const (
	EffectRing EffectKind = iota + 1
	EffectSound
)

// Effect is a one-shot request that front ends consume once.
type Effect struct {
	Kind   EffectKind
	Pos    base.Vec3
	Handle base.Handle
}

const maxPendingEffects = 32

// Canvas is an in-memory Presenter. It allocates handles, keeps the visual
// tree and resolves grid clicks the way a raycast against that tree would.
type Canvas struct {
	next    base.Handle
	visuals map[base.Handle]*Visual
	order   []base.Handle
	white   string
	black   string
	effects []Effect
}

var _ Presenter = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{visuals: make(map[base.Handle]*Visual)}
}

func (c *Canvas) add(v *Visual) base.Handle {
	c.next++
	v.Handle = c.next
	c.visuals[v.Handle] = v
	c.order = append(c.order, v.Handle)
	return v.Handle
}

func (c *Canvas) SpawnTile(at base.Point, light bool, pos base.Vec3) base.Handle {
	return c.add(&Visual{Kind: KindTile, At: at, Light: light, Pos: pos})
}

func (c *Canvas) SpawnPiece(v base.Variant, s base.Side, parent base.Handle, pos base.Vec3) base.Handle {
	vis := &Visual{Kind: KindPiece, Variant: v, Side: s, Pos: pos, Parent: parent}
	if t, ok := c.visuals[parent]; ok {
		vis.At = t.At
	}
	return c.add(vis)
}

func (c *Canvas) Highlight(h base.Handle) {
	if v, ok := c.visuals[h]; ok {
		v.Highlighted = true
	}
}

func (c *Canvas) Restore(h base.Handle) {
	if v, ok := c.visuals[h]; ok {
		v.Highlighted = false
	}
}

func (c *Canvas) PlaySelectSound(h base.Handle) {
	c.push(Effect{Kind: EffectSound, Handle: h})
}

func (c *Canvas) SpawnEffect(pos base.Vec3) {
	c.push(Effect{Kind: EffectRing, Pos: pos})
}

func (c *Canvas) push(e Effect) {
	if len(c.effects) == maxPendingEffects {
		c.effects = c.effects[1:]
	}
	c.effects = append(c.effects, e)
}

func (c *Canvas) MoveVisual(h, parent base.Handle, pos base.Vec3) {
	v, ok := c.visuals[h]
	if !ok {
		return
	}
	v.Pos = pos
	v.Parent = parent
	if t, ok := c.visuals[parent]; ok {
		v.At = t.At
	}
}

func (c *Canvas) ShowScore(white, black string) {
	c.white, c.black = white, black
}

func (c *Canvas) Score() (white, black string) {
	return c.white, c.black
}

func (c *Canvas) Visual(h base.Handle) (Visual, bool) {
	v, ok := c.visuals[h]
	if !ok {
		return Visual{}, false
	}
	return *v, true
}

// Visuals returns copies in creation order.
func (c *Canvas) Visuals() []Visual {
	out := make([]Visual, 0, len(c.order))
	for _, h := range c.order {
		out = append(out, *c.visuals[h])
	}
	return out
}

// DrainEffects hands pending effects to the caller and forgets them.
func (c *Canvas) DrainEffects() []Effect {
	out := c.effects
	c.effects = nil
	return out
}

// HitAt resolves a click on grid point p. Piece visuals sit above tiles, so a
// piece on p wins over the tile under it.
func (c *Canvas) HitAt(p base.Point) base.Hit {
	tile := base.NoHandle
	for _, h := range c.order {
		v := c.visuals[h]
		if v.At != p {
			continue
		}
		switch v.Kind {
		case KindPiece:
			return base.Hit{Kind: base.HitPiece, Handle: h}
		case KindTile:
			tile = h
		}
	}
	if tile == base.NoHandle {
		return base.Hit{Kind: base.HitNone}
	}
	return base.Hit{Kind: base.HitTile, Handle: tile}
}

// Reset forgets every visual. Handles keep increasing so stale ones never match.
func (c *Canvas) Reset() {
	c.visuals = make(map[base.Handle]*Visual)
	c.order = nil
	c.effects = nil
	c.white, c.black = "", ""
}
