// Package view is the boundary between the board core and whatever draws it.
package view

import "tilechess/src/base"

// Presenter receives every visual side effect the core produces.
type Presenter interface {
	SpawnTile(at base.Point, light bool, pos base.Vec3) base.Handle
	SpawnPiece(v base.Variant, s base.Side, parent base.Handle, pos base.Vec3) base.Handle
	Highlight(h base.Handle)
	Restore(h base.Handle)
	PlaySelectSound(h base.Handle)
	SpawnEffect(pos base.Vec3)
	MoveVisual(h, parent base.Handle, pos base.Vec3)
	ShowScore(white, black string)
}
