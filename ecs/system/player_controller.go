package system

import (
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerCollisionComponent.Kind(),
	) {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		coll, _ := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())

		// Left wins when both directions are held.
		switch {
		case input.Left:
			vel.X = -player.MoveSpeed
		case input.Right:
			vel.X = player.MoveSpeed
		default:
			vel.X = 0
		}

		if input.Jump && coll.Grounded {
			vel.Y = player.JumpSpeed
			coll.Grounded = false
		}
	}
}
