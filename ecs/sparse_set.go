package ecs

// componentStore is the type-erased view the world uses to clean up after a
// destroyed entity and to intersect stores in queries.
type componentStore interface {
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
	Len() int
}

// SparseSet is a cache-friendly storage for components keyed by entity slot.
// sparse maps a slot id to its dense index plus one; zero means absent.
type SparseSet[T any] struct {
	dense  []Entity
	values []*T
	sparse []int
}

func newSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

func (s *SparseSet[T]) index(e Entity) (int, bool) {
	id := int(e.slot())
	if id >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id] - 1
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

func (s *SparseSet[T]) has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *SparseSet[T]) get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *SparseSet[T]) set(e Entity, v *T) {
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}

	id := int(e.slot())
	for id >= len(s.sparse) {
		s.sparse = append(s.sparse, 0)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id] = len(s.dense)
}

// remove swaps the last element into the freed slot, so dense order is not
// creation order. Queries sort their results instead of relying on it.
func (s *SparseSet[T]) remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}

	last := len(s.dense) - 1
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.values[idx] = s.values[last]
		s.sparse[int(moved.slot())] = idx + 1
	}
	s.dense = s.dense[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.sparse[int(e.slot())] = 0
	return true
}

func (s *SparseSet[T]) entities() []Entity {
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}

func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}
