package system

import (
	"fmt"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

// DebugText summarises the player's simulation state for the debug overlay.
func DebugText(w *ecs.World) string {
	if w == nil {
		return ""
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return "no player"
	}

	x, y, vx, vy := 0.0, 0.0, 0.0, 0.0
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		vx, vy = v.X, v.Y
	}
	grounded := false
	if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
		grounded = pc.Grounded
	}
	attacking := false
	if hb, ok := ecs.Get(w, player, component.AttackHitboxComponent.Kind()); ok {
		attacking = hb.Active
	}
	health := 0
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		health = h.Current
	}

	return fmt.Sprintf(
		"Pos: %.0f,%.0f\nVel: %.0f,%.0f\nGrounded: %v\nAttacking: %v\nHealth: %d\nEnemies: %d",
		x, y, vx, vy, grounded, attacking, health, ecs.Count(w, component.EnemyComponent.Kind()),
	)
}
