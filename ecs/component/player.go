package component

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

type Player struct {
	Speed        float64
	FallSpeed    float64
	GravityAccel float64

	SpawnX float64
	SpawnY float64

	Facing   Facing
	Grounded bool
	// CarryX is the drift inherited from a moving platform on the last landing.
	CarryX float64
	// PrevY is the top edge before this tick's integration.
	PrevY float64
}

var PlayerComponent = NewComponent[Player]()
