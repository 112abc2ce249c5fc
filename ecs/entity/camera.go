package entity

import (
	"fmt"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/milk9111/fario/prefabs"
)

const defaultViewportWidth = 800

func NewCamera(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	target := spec.Target
	if target == "" {
		target = "player"
	}
	viewport := spec.ViewportWidth
	if viewport <= 0 {
		viewport = defaultViewportWidth
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName:    target,
		ViewportWidth: viewport,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
