package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fario/common"
)

// Size is the extent of an entity's axis-aligned box, anchored at its
// Transform.
type Size struct {
	Width  float64
	Height float64
}

var SizeComponent = NewComponent[Size]()

// Velocity is measured in world units per frame.
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()

// Bounds combines a transform and size into a world rectangle.
func Bounds(t *Transform, s *Size) common.Rect {
	return common.Rect{X: t.X, Y: t.Y, Width: s.Width, Height: s.Height}
}
