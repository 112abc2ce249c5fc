package ecs

import "fmt"

// Entity is a handle to a world slot. The low 32 bits select the slot and the
// high 32 bits count how often that slot has been recycled, so a handle kept
// past DestroyEntity never matches the slot's next occupant.
type Entity uint64

type (
	slotIndex   uint32
	slotVersion uint32
)

func newEntity(slot slotIndex, version slotVersion) Entity {
	return Entity(uint64(version)<<32 | uint64(slot))
}

func (e Entity) slot() slotIndex {
	return slotIndex(e & 0xffffffff)
}

func (e Entity) version() slotVersion {
	return slotVersion(e >> 32)
}

// String prints the slot, plus the version once the slot has been reused.
func (e Entity) String() string {
	if v := e.version(); v > 0 {
		return fmt.Sprintf("%d.v%d", e.slot(), v)
	}
	return fmt.Sprintf("%d", e.slot())
}

// Valid reports whether e could name a live entity. Slot 0 is never used.
func (e Entity) Valid() bool {
	return e.slot() != 0
}
