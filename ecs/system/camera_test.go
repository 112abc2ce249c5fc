package system

import (
	"testing"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestCameraOffset(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		viewport float64
		want     float64
	}{
		{"left_of_centre_goes_negative", 100, 800, -300},
		{"centred", 400, 800, 0},
		{"past_level_end", 2500, 800, 2100},
		{"odd_viewport_floors_half", 100, 801, -300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CameraOffset(tc.x, tc.viewport))
		})
	}
}

func TestCameraSystemFollowsPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 450)
	cam := addCamera(t, w, 800)
	cs := NewCameraSystem()

	cs.Update(w)
	camT := mustGet(t, w, cam, component.TransformComponent.Kind())
	assert.Equal(t, -300.0, camT.X)
	assert.Equal(t, 0.0, camT.Y, "no vertical scrolling")

	pt := mustGet(t, w, player, component.TransformComponent.Kind())
	pt.X = 1000
	pt.Y = 10
	cs.Update(w)
	assert.Equal(t, 600.0, camT.X)
	assert.Equal(t, 0.0, camT.Y)
}

func TestCameraSystemWithoutCamera(t *testing.T) {
	w := ecs.NewWorld()
	addPlayer(t, w, 100, 450)
	assert.NotPanics(t, func() { NewCameraSystem().Update(w) })
}
