package component

// Score tracks progress for the current session and the persisted best.
type Score struct {
	// Peak is the deepest player y reached this session.
	Peak  float64
	Value int
	Level int
	High  int
}

var ScoreComponent = NewComponent[Score]()
