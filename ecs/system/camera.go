package system

import (
	"math"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update centres the camera horizontally on its target. There is no smoothing
// or clamping, and the vertical offset stays at zero.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, camComp.TargetName)
	}

	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind()); ok {
		camTransform.X = CameraOffset(target.X, camComp.ViewportWidth)
		camTransform.Y = 0
	}
}

// CameraOffset is the world X drawn at the left screen edge when x sits at
// the centre of a viewport of the given width.
func CameraOffset(x, viewportWidth float64) float64 {
	return x - math.Floor(viewportWidth/2)
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}
	return 0
}
