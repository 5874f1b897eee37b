package component

// Input stores per-tick input state for an entity.
type Input struct {
	Left    bool
	Right   bool
	Confirm bool
	Restart bool
}

// Dir folds the held directions into -1, 0 or +1.
func (i *Input) Dir() float64 {
	if i == nil || i.Left == i.Right {
		return 0
	}
	if i.Left {
		return -1
	}
	return 1
}

var InputComponent = NewComponent[Input]()
