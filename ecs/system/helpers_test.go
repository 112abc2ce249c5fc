package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

const (
	playerW = 100.0
	playerH = 60.0
)

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    5,
		JumpSpeed:    -15,
		Gravity:      1,
		AttackReach:  40,
		AttackMargin: 10,
	}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: playerW, Height: playerH}))
	require.NoError(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	require.NoError(t, ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.AttackHitboxComponent.Kind(), &component.AttackHitbox{}))
	require.NoError(t, ecs.Add(w, e, component.RenderRectComponent.Kind(), &component.RenderRect{Color: colornames.Blue}))
	require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 3}))
	return e
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: width, Height: height}))
	require.NoError(t, ecs.Add(w, e, component.RenderRectComponent.Kind(), &component.RenderRect{Color: colornames.Green}))
	return e
}

func addEnemy(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{Speed: 10}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}))
	require.NoError(t, ecs.Add(w, e, component.SizeComponent.Kind(), &component.Size{Width: 40, Height: 40}))
	require.NoError(t, ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 30, Max: 30}))
	require.NoError(t, ecs.Add(w, e, component.RenderRectComponent.Kind(), &component.RenderRect{Color: colornames.Red}))
	require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}))
	return e
}

func addCamera(t *testing.T, w *ecs.World, viewport float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{TargetName: "player", ViewportWidth: viewport}))
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok, "entity %v missing component", e)
	return v
}

type fakeInput struct {
	held map[Key]bool
	quit bool
}

func newFakeInput(keys ...Key) *fakeInput {
	f := &fakeInput{held: make(map[Key]bool)}
	for _, k := range keys {
		f.held[k] = true
	}
	return f
}

func (f *fakeInput) Pressed(k Key) bool  { return f.held[k] }
func (f *fakeInput) QuitRequested() bool { return f.quit }

type drawCall struct {
	op     string
	x, y   float32
	w, h   float32
	stroke float32
	color  color.Color
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Clear(col color.Color) {
	c.calls = append(c.calls, drawCall{op: "clear", color: col})
}

func (c *recordingCanvas) FillRect(x, y, w, h float32, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "fill", x: x, y: y, w: w, h: h, color: col})
}

func (c *recordingCanvas) StrokeRect(x, y, w, h, width float32, col color.Color) {
	c.calls = append(c.calls, drawCall{op: "stroke", x: x, y: y, w: w, h: h, stroke: width, color: col})
}
