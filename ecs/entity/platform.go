package entity

import (
	"fmt"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/milk9111/fario/levels"
	"github.com/milk9111/fario/prefabs"
	"golang.org/x/image/colornames"
)

func NewPlatform(w *ecs.World, spec *prefabs.PlatformSpec, def levels.Platform) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("platform: nil spec")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("platform: add platform tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: def.X, Y: def.Y}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.SizeComponent.Kind(), &component.Size{Width: def.W, Height: def.H}); err != nil {
		return 0, fmt.Errorf("platform: add size: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderRectComponent.Kind(), &component.RenderRect{
		Color: spec.Color.ColorOr(colornames.Green),
	}); err != nil {
		return 0, fmt.Errorf("platform: add render rect: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: spec.RenderLayer.Index,
	}); err != nil {
		return 0, fmt.Errorf("platform: add render layer: %w", err)
	}

	return entity, nil
}
