package entity

import (
	"fmt"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// NewSpikeStrip creates the hazard strip spanning the top of the field.
func NewSpikeStrip(w *ecs.World, spec *prefabs.GameSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{}); err != nil {
		return 0, fmt.Errorf("spike: add hazard: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("spike: add transform: %w", err)
	}
	body := &component.Body{Width: spec.Field.Width, Height: spec.Hazard.Height}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("spike: add body: %w", err)
	}
	return e, nil
}
