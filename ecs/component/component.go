package component

import (
	"errors"
	"sync/atomic"
)

// Errors returned when wiring components onto entities.
var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID keys a component store inside a world. IDs are process-wide and
// start at 1.
type ComponentID uint32

var lastComponentID atomic.Uint32

// Identifier lets kinds with different payload types share one query.
type Identifier interface {
	ID() ComponentID
}

// ComponentKind is the typed key for one component store. The zero value is
// rejected by the world.
type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is declared once per component type as a package variable,
// e.g. TransformComponent, and hands out that type's kind.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
