package system

import (
	"github.com/milk9111/fario/common"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

// PlayerAttackSystem rebuilds the melee hitbox from the player's box before
// physics moves it. A player standing still faces right.
type PlayerAttackSystem struct{}

func NewPlayerAttackSystem() *PlayerAttackSystem {
	return &PlayerAttackSystem{}
}

func (s *PlayerAttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.AttackHitboxComponent.Kind(),
	) {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		size, _ := ecs.Get(w, e, component.SizeComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		hitbox, _ := ecs.Get(w, e, component.AttackHitboxComponent.Kind())

		if !input.Attack {
			*hitbox = component.AttackHitbox{}
			continue
		}

		hitbox.Active = true
		hitbox.Rect = AttackRect(component.Bounds(transform, size), vel.X, player.AttackReach, player.AttackMargin)
	}
}

// AttackRect returns a reach-wide strip beside body, inset by margin at the
// top and bottom, on the side given by the sign of vx.
func AttackRect(body common.Rect, vx, reach, margin float64) common.Rect {
	x := body.Right()
	if vx < 0 {
		x = body.Left() - reach
	}
	return common.Rect{
		X:      x,
		Y:      body.Y + margin,
		Width:  reach,
		Height: body.Height - 2*margin,
	}
}
