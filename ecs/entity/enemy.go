package entity

import (
	"fmt"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/milk9111/fario/levels"
	"github.com/milk9111/fario/prefabs"
	"golang.org/x/image/colornames"
)

func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, def levels.Enemy) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("enemy: nil spec")
	}

	width, height := def.W, def.H
	if width <= 0 {
		width = spec.Size.Width
	}
	if height <= 0 {
		height = spec.Size.Height
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{Speed: spec.Speed}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy component: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: def.X, Y: def.Y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.SizeComponent.Kind(), &component.Size{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("enemy: add size: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderRectComponent.Kind(), &component.RenderRect{
		Color: spec.Color.ColorOr(colornames.Red),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add render rect: %w", err)
	}
	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: spec.RenderLayer.Index,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add render layer: %w", err)
	}

	return entity, nil
}
