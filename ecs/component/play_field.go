package component

// PlayField stores the bounds of the simulated area.
type PlayField struct {
	Width  float64
	Height float64
}

var PlayFieldComponent = NewComponent[PlayField]()
