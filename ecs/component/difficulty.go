package component

// Difficulty holds the tunables that may change as the level rises.
type Difficulty struct {
	SpawnRate   float64
	ScrollSpeed float64
}

var DifficultyComponent = NewComponent[Difficulty]()
