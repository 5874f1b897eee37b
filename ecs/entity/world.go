package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/prefabs"
)

// BuildWorld populates w with a fresh NotStarted session: the session
// singleton, the spike strip and the player. No platforms exist yet.
func BuildWorld(w *ecs.World, spec *prefabs.GameSpec, highScore int) error {
	if w == nil || spec == nil {
		return fmt.Errorf("build world: world and spec are required")
	}
	if _, err := NewSessionState(w, spec, highScore); err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	if _, err := NewSpikeStrip(w, spec); err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	if _, err := NewPlayer(w, spec); err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	return nil
}
