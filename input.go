package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fario/ecs/system"
)

// Input reads the keyboard through ebiten. Each action has exactly one key.
type Input struct {
	keys map[system.Key]ebiten.Key
	quit ebiten.Key
}

func NewInput() *Input {
	return &Input{
		keys: map[system.Key]ebiten.Key{
			system.KeyLeft:   ebiten.KeyArrowLeft,
			system.KeyRight:  ebiten.KeyArrowRight,
			system.KeyJump:   ebiten.KeySpace,
			system.KeyAttack: ebiten.KeyA,
		},
		quit: ebiten.KeyEscape,
	}
}

func (i *Input) Pressed(k system.Key) bool {
	key, ok := i.keys[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

// QuitRequested covers the Escape key. Closing the window is handled by
// ebiten itself, which makes RunGame return.
func (i *Input) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(i.quit)
}
