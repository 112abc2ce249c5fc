package component

// Enemy marks a defeatable entity. Speed is carried from the prefab but
// enemies do not move yet.
type Enemy struct {
	Speed float64
}

var EnemyComponent = NewComponent[Enemy]()
