package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// NewSessionState creates the singleton holding session, score, level timer,
// difficulty and play-field bounds.
func NewSessionState(w *ecs.World, spec *prefabs.GameSpec, highScore int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	_, spawnY := spec.SpawnPoint()
	adds := []struct {
		name string
		add  func() error
	}{
		{"session", func() error {
			return ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{State: component.SessionNotStarted})
		}},
		{"score", func() error {
			return ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{Peak: spawnY, Level: 1, High: highScore})
		}},
		{"level timer", func() error {
			interval := spec.TimerTicks()
			return ecs.Add(w, e, component.LevelTimerComponent.Kind(), &component.LevelTimer{Frames: interval, Interval: interval})
		}},
		{"difficulty", func() error {
			return ecs.Add(w, e, component.DifficultyComponent.Kind(), &component.Difficulty{
				SpawnRate:   spec.Spawn.Rate,
				ScrollSpeed: spec.Platform.ScrollSpeed,
			})
		}},
		{"play field", func() error {
			return ecs.Add(w, e, component.PlayFieldComponent.Kind(), &component.PlayField{Width: spec.Field.Width, Height: spec.Field.Height})
		}},
	}
	for _, a := range adds {
		if err := a.add(); err != nil {
			return 0, fmt.Errorf("session: add %s: %w", a.name, err)
		}
	}
	return e, nil
}
