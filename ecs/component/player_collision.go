package component

// PlayerCollision stores per-player collision state derived from the last
// physics pass.
type PlayerCollision struct {
	Grounded bool
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
