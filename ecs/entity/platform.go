package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// NewPlatform places a platform with its top-left corner at (x, y).
func NewPlatform(w *ecs.World, x, y, width, height float64, kind component.PlatformType, drift float64) (ecs.Entity, error) {
	if kind != component.PlatformMoving {
		drift = 0
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("platform: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("platform: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Type: kind, Drift: drift, PrevY: y}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	return e, nil
}
