package system

import (
	"github.com/milk9111/fario/common"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

// CombatSystem removes enemies that the player stomped or hit with the attack
// hitbox this frame.
//
// Both checks run against the enemies alive when the system starts, in
// ascending entity order, and removals are applied only after both checks
// finish. Every enemy that qualifies for a stomp is removed; the bounce
// velocity is written once per stomped enemy, so the last one in order has
// the final say.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

type enemyBox struct {
	entity ecs.Entity
	rect   common.Rect
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return
	}
	tuning, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	transform, okT := ecs.Get(w, player, component.TransformComponent.Kind())
	size, okS := ecs.Get(w, player, component.SizeComponent.Kind())
	vel, okV := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !okT || !okS || !okV {
		return
	}

	enemies := enemySnapshot(w)
	if len(enemies) == 0 {
		return
	}

	defeated := make(map[ecs.Entity]ecs.DefeatCause, len(enemies))
	order := make([]ecs.Entity, 0, len(enemies))
	mark := func(e ecs.Entity, cause ecs.DefeatCause) {
		if _, seen := defeated[e]; seen {
			return
		}
		defeated[e] = cause
		order = append(order, e)
	}

	body := component.Bounds(transform, size)
	fallSpeed := vel.Y
	bounce := common.FloorDiv(tuning.JumpSpeed, 2)
	for _, enemy := range enemies {
		if landsOn(body, enemy.rect, fallSpeed) {
			mark(enemy.entity, ecs.DefeatStomp)
			vel.Y = bounce
		}
	}

	if hitbox, ok := ecs.Get(w, player, component.AttackHitboxComponent.Kind()); ok && hitbox.Active {
		for _, enemy := range enemies {
			if hitbox.Rect.Intersects(enemy.rect) {
				mark(enemy.entity, ecs.DefeatAttack)
			}
		}
	}

	for _, e := range order {
		if !ecs.DestroyEntity(w, e) {
			continue
		}
		w.Events().Push(ecs.Event{
			Type: ecs.EventEnemyDefeated,
			Data: ecs.EnemyDefeatedEvent{Entity: e, Cause: defeated[e]},
		})
	}
}

func enemySnapshot(w *ecs.World) []enemyBox {
	var out []enemyBox
	ecs.ForEach3(
		w,
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		func(e ecs.Entity, _ *component.Enemy, t *component.Transform, s *component.Size) {
			out = append(out, enemyBox{entity: e, rect: component.Bounds(t, s)})
		},
	)
	return out
}
