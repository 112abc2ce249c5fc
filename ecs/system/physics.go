package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/fario/common"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

// PhysicsSystem integrates player velocity and lands the player on platforms.
// Platforms only stop downward motion; there is no sideways resolution and no
// terminal velocity.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	platforms := platformRects(w)

	for _, e := range w.Query(
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PlayerCollisionComponent.Kind(),
	) {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		size, _ := ecs.Get(w, e, component.SizeComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		coll, _ := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())

		vel.Vector = vel.Add(cp.Vector{Y: player.Gravity})
		transform.X += vel.X
		transform.Y += vel.Y

		wasGrounded := coll.Grounded
		coll.Grounded = false

		// Every platform is tested against the moved box; the last one that
		// qualifies decides where the player lands.
		body := component.Bounds(transform, size)
		fallSpeed := vel.Y
		var support common.Rect
		for _, plat := range platforms {
			if landsOn(body, plat, fallSpeed) {
				support = plat
				coll.Grounded = true
			}
		}
		if coll.Grounded {
			transform.Y = support.Top() - size.Height
			vel.Y = 0
		}

		if coll.Grounded && !wasGrounded {
			w.Events().Push(ecs.Event{
				Type: ecs.EventGrounded,
				Data: ecs.GroundedEvent{Entity: e, Y: transform.Y},
			})
		}
	}
}

// landsOn reports whether a body moving down at vy overlaps target and its
// bottom edge is within one frame of travel of target's top edge. The
// tolerance catches bodies that sank into the target during this frame's move.
func landsOn(body, target common.Rect, vy float64) bool {
	return body.Intersects(target) && vy > 0 && body.Bottom() <= target.Top()+vy
}

func platformRects(w *ecs.World) []common.Rect {
	var rects []common.Rect
	ecs.ForEach3(
		w,
		component.PlatformTagComponent.Kind(),
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		func(_ ecs.Entity, _ *component.PlatformTag, t *component.Transform, s *component.Size) {
			rects = append(rects, component.Bounds(t, s))
		},
	)
	return rects
}
