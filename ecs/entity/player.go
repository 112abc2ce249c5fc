package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/milk9111/fario/prefabs"
	"golang.org/x/image/colornames"
)

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if _, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		return 0, fmt.Errorf("player: world already has a player")
	}

	player := ecs.CreateEntity(w)

	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), playerTuning(spec)); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.SizeComponent.Kind(), &component.Size{
		Width:  spec.Size.Width,
		Height: spec.Size.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add size: %w", err)
	}
	if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{Vector: cp.Vector{}}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add player collision: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.AttackHitboxComponent.Kind(), &component.AttackHitbox{}); err != nil {
		return 0, fmt.Errorf("player: add attack hitbox: %w", err)
	}
	if err := ecs.Add(w, player, component.HealthComponent.Kind(), &component.Health{
		Current: spec.Health,
		Max:     spec.Health,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderRectComponent.Kind(), &component.RenderRect{
		Color: spec.Color.ColorOr(colornames.Royalblue),
	}); err != nil {
		return 0, fmt.Errorf("player: add render rect: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{
		Index: spec.RenderLayer.Index,
	}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	return player, nil
}

// ApplyPlayerSpec replaces the tuning of a live player without touching its
// position, velocity or collision state.
func ApplyPlayerSpec(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("player: apply spec: %w", err)
	}
	if !w.IsAlive(player) {
		return fmt.Errorf("player: apply spec: %w", component.ErrEntityNotAlive)
	}

	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), playerTuning(spec)); err != nil {
		return fmt.Errorf("player: apply tuning: %w", err)
	}
	if size, ok := ecs.Get(w, player, component.SizeComponent.Kind()); ok {
		size.Width = spec.Size.Width
		size.Height = spec.Size.Height
	}
	if rr, ok := ecs.Get(w, player, component.RenderRectComponent.Kind()); ok {
		rr.Color = spec.Color.ColorOr(rr.Color)
	}
	return nil
}

func playerTuning(spec *prefabs.PlayerSpec) *component.Player {
	return &component.Player{
		MoveSpeed:    spec.MoveSpeed,
		JumpSpeed:    spec.JumpSpeed,
		Gravity:      spec.Gravity,
		AttackReach:  spec.Attack.Reach,
		AttackMargin: spec.Attack.Margin,
	}
}
