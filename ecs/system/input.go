package system

import (
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
)

// Key is one of the fixed actions the game reads each frame.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyAttack
)

// InputSource reports which keys are held this frame and whether the player
// asked to quit.
type InputSource interface {
	Pressed(k Key) bool
	QuitRequested() bool
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	left := i.source.Pressed(KeyLeft)
	right := i.source.Pressed(KeyRight)
	jump := i.source.Pressed(KeyJump)
	attack := i.source.Pressed(KeyAttack)

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Jump = jump
		input.Attack = attack
	})
}
