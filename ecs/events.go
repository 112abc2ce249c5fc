package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

type EventType string

const (
	EventGrounded      EventType = "grounded"
	EventEnemyDefeated EventType = "enemy_defeated"
)

// DefeatCause names the path that eliminated an enemy.
type DefeatCause string

const (
	DefeatStomp  DefeatCause = "stomp"
	DefeatAttack DefeatCause = "attack"
)

// GroundedEvent is emitted when an entity lands after being airborne.
type GroundedEvent struct {
	Entity Entity
	Y      float64
}

// EnemyDefeatedEvent is emitted once per enemy removed from the world.
type EnemyDefeatedEvent struct {
	Entity Entity
	Cause  DefeatCause
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
