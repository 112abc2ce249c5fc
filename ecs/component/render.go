package component

import "image/color"

// RenderRect draws the entity's box filled with Color, or outlined when
// StrokeWidth is positive.
type RenderRect struct {
	Color       color.Color
	StrokeWidth float32
}

var RenderRectComponent = NewComponent[RenderRect]()

// RenderLayer orders drawing: lower layers first, then by entity.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
