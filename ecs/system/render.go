package system

import (
	"image/color"
	"sort"

	"github.com/milk9111/fario/common"
	"github.com/milk9111/fario/ecs"
	"github.com/milk9111/fario/ecs/component"
	"golang.org/x/image/colornames"
)

// Canvas is the render target the presentation layer draws on. Coordinates
// are in screen space.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
}

// RenderStyle holds the colours that do not belong to any entity.
type RenderStyle struct {
	Background   color.Color
	HitboxColor  color.Color
	HitboxStroke float32
	HitboxLayer  int
}

func DefaultRenderStyle() RenderStyle {
	return RenderStyle{
		Background:   colornames.White,
		HitboxColor:  colornames.Black,
		HitboxStroke: 2,
		HitboxLayer:  2,
	}
}

type RenderSystem struct {
	camEntity ecs.Entity
	style     RenderStyle
}

func NewRenderSystem(style RenderStyle) *RenderSystem {
	return &RenderSystem{style: style}
}

func (r *RenderSystem) SetStyle(style RenderStyle) {
	r.style = style
}

type drawable struct {
	layer  int
	entity ecs.Entity
	rect   common.Rect
	color  color.Color
	stroke float32
}

// Draw renders the world through the camera. It only reads components.
func (r *RenderSystem) Draw(w *ecs.World, screen Canvas) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Clear(r.style.Background)

	camX, camY := r.cameraOffset(w)

	var items []drawable
	for _, e := range w.Query(
		component.TransformComponent.Kind(),
		component.SizeComponent.Kind(),
		component.RenderRectComponent.Kind(),
	) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SizeComponent.Kind())
		rr, _ := ecs.Get(w, e, component.RenderRectComponent.Kind())
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{
			layer:  layer,
			entity: e,
			rect:   component.Bounds(t, s),
			color:  rr.Color,
			stroke: rr.StrokeWidth,
		})
	}

	ecs.ForEach(w, component.AttackHitboxComponent.Kind(), func(e ecs.Entity, hb *component.AttackHitbox) {
		if !hb.Active {
			return
		}
		items = append(items, drawable{
			layer:  r.style.HitboxLayer,
			entity: e,
			rect:   hb.Rect,
			color:  r.style.HitboxColor,
			stroke: r.style.HitboxStroke,
		})
	})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].entity < items[j].entity
	})

	for _, it := range items {
		rect := it.rect.Offset(camX, camY)
		x, y := float32(rect.X), float32(rect.Y)
		wd, ht := float32(rect.Width), float32(rect.Height)
		if it.color == nil {
			continue
		}
		if it.stroke > 0 {
			screen.StrokeRect(x, y, wd, ht, it.stroke, it.color)
			continue
		}
		screen.FillRect(x, y, wd, ht, it.color)
	}
}

func (r *RenderSystem) cameraOffset(w *ecs.World) (float64, float64) {
	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		return camTransform.X, camTransform.Y
	}
	return 0, 0
}
