package component

import "github.com/milk9111/fario/common"

// AttackHitbox is the melee box for the current frame only. It is rebuilt
// every frame and carries no duration.
type AttackHitbox struct {
	Active bool
	Rect   common.Rect
}

var AttackHitboxComponent = NewComponent[AttackHitbox]()
