package component

// LevelTimer advances the level every Interval ticks while the session runs.
type LevelTimer struct {
	Frames   int
	Interval int
	Armed    bool
}

var LevelTimerComponent = NewComponent[LevelTimer]()
