package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// NewPlayer creates the player at the spec's spawn point, already falling.
func NewPlayer(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, fmt.Errorf("player: world and spec are required")
	}

	x, y := spec.SpawnPoint()
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	body := &component.Body{Width: spec.Player.Width, Height: spec.Player.Height}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	vel := &component.Velocity{Vector: cp.Vector{X: 0, Y: spec.Player.FallSpeed}}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), vel); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	player := &component.Player{
		Speed:        spec.Player.Speed,
		FallSpeed:    spec.Player.FallSpeed,
		GravityAccel: spec.Player.GravityAccel,
		SpawnX:       x,
		SpawnY:       y,
		Facing:       component.FacingRight,
		PrevY:        y,
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}
