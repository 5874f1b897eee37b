package component

import "github.com/jakecoffman/cp"

// Body is an axis-aligned box anchored at the entity's Transform.
type Body struct {
	Width  float64
	Height float64
}

var BodyComponent = NewComponent[Body]()

// Bounds returns the box in screen space: L/R are the horizontal edges, B is
// the top edge and T the bottom edge, matching how cp.BB is used for tiles.
func Bounds(t *Transform, b *Body) cp.BB {
	if t == nil || b == nil {
		return cp.BB{}
	}
	return cp.BB{L: t.X, B: t.Y, R: t.X + b.Width, T: t.Y + b.Height}
}
