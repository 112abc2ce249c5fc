package system

import (
	"testing"

	"github.com/milk9111/fario/common"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestAttackRect(t *testing.T) {
	body := common.Rect{X: 100, Y: 200, Width: 100, Height: 60}

	tests := []struct {
		name string
		vx   float64
		want common.Rect
	}{
		{"standing_faces_right", 0, common.Rect{X: 200, Y: 210, Width: 40, Height: 40}},
		{"moving_right", 5, common.Rect{X: 200, Y: 210, Width: 40, Height: 40}},
		{"moving_left", -5, common.Rect{X: 60, Y: 210, Width: 40, Height: 40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AttackRect(body, tc.vx, 40, 10)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 40.0, got.Width)
			assert.Equal(t, body.Height-20, got.Height)
		})
	}
}

func TestPlayerAttackSystem(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 100, 200)
	input := mustGet(t, w, player, component.InputComponent.Kind())
	vel := mustGet(t, w, player, component.VelocityComponent.Kind())
	hitbox := mustGet(t, w, player, component.AttackHitboxComponent.Kind())
	s := NewPlayerAttackSystem()

	s.Update(w)
	assert.False(t, hitbox.Active, "no hitbox without attack input")

	input.Attack = true
	vel.X = -5
	s.Update(w)
	assert.True(t, hitbox.Active)
	assert.Equal(t, common.Rect{X: 60, Y: 210, Width: 40, Height: 40}, hitbox.Rect)

	// Rebuilt every frame from the current body.
	mustGet(t, w, player, component.TransformComponent.Kind()).X = 300
	vel.X = 0
	s.Update(w)
	assert.Equal(t, common.Rect{X: 400, Y: 210, Width: 40, Height: 40}, hitbox.Rect)

	input.Attack = false
	s.Update(w)
	assert.Equal(t, component.AttackHitbox{}, *hitbox)
}
