package ecs

import (
	"slices"

	"github.com/milk9111/fario/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, their components and the frame's event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns the live entities that own every listed component, in
// ascending entity order.
func (w *World) Query(kinds ...component.Identifier) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, s)
	}

	// iterate the smallest store
	slices.SortFunc(stores, func(a, b componentStore) int {
		return a.Len() - b.Len()
	})

	var out []Entity
outer:
	for _, e := range stores[0].entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		for _, s := range stores[1:] {
			if !s.has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// First returns the lowest entity owning the given component.
func (w *World) First(kind component.Identifier) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}
