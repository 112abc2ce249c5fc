package ecs

// entityStore hands out entity slots and recycles destroyed ones. Slot 0 is
// reserved so the zero Entity never names anything.
type entityStore struct {
	versions []slotVersion
	alive    []bool
	free     []slotIndex
	live     int
}

func (s *entityStore) create() Entity {
	if len(s.versions) == 0 {
		s.versions = append(s.versions, 0)
		s.alive = append(s.alive, false)
	}

	var slot slotIndex
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		slot = slotIndex(len(s.versions))
		s.versions = append(s.versions, 0)
		s.alive = append(s.alive, false)
	}

	s.alive[slot] = true
	s.live++
	return newEntity(slot, s.versions[slot])
}

// destroy frees e's slot and bumps its version so stale handles stop
// matching. It returns false for handles that are already dead.
func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := e.slot()
	s.alive[slot] = false
	s.versions[slot]++
	s.free = append(s.free, slot)
	s.live--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	slot := e.slot()
	if slot == 0 || int(slot) >= len(s.versions) {
		return false
	}
	return s.alive[slot] && s.versions[slot] == e.version()
}

// all lists live entities by ascending slot.
func (s *entityStore) all() []Entity {
	out := make([]Entity, 0, s.live)
	for slot := 1; slot < len(s.versions); slot++ {
		if s.alive[slot] {
			out = append(out, newEntity(slotIndex(slot), s.versions[slot]))
		}
	}
	return out
}
