package system

import (
	"testing"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestInputSystemCopiesHeldKeys(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0)

	NewInputSystem(newFakeInput(KeyLeft, KeyAttack)).Update(w)

	input := mustGet(t, w, player, component.InputComponent.Kind())
	assert.Equal(t, component.Input{Left: true, Attack: true}, *input)

	NewInputSystem(newFakeInput()).Update(w)
	assert.Equal(t, component.Input{}, *input)
}

func TestInputSystemNilSource(t *testing.T) {
	w := ecs.NewWorld()
	player := addPlayer(t, w, 0, 0)
	input := mustGet(t, w, player, component.InputComponent.Kind())
	input.Jump = true

	NewInputSystem(nil).Update(w)

	assert.True(t, input.Jump, "nil source must leave input untouched")
}
