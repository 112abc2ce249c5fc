package component

// Player holds the movement tuning of the controllable entity. JumpSpeed is
// negative because world Y grows downward.
type Player struct {
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64

	AttackReach  float64
	AttackMargin float64
}

var PlayerComponent = NewComponent[Player]()
