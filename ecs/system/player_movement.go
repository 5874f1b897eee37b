package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// PlayerMovementSystem applies horizontal input and the current vertical
// speed to the player, clamped to the field, and ends the session when the
// player's bottom edge leaves the field.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}
	field := playFieldOf(w)
	if field == nil {
		return
	}

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform, b *component.Body, v *component.Velocity) {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		dir := input.Dir()
		switch {
		case dir < 0:
			p.Facing = component.FacingLeft
		case dir > 0:
			p.Facing = component.FacingRight
		}

		p.PrevY = t.Y

		maxX := field.Width - b.Width
		v.X = cp.Clamp(dir*p.Speed+p.CarryX, -t.X, maxX-t.X)
		t.X = cp.Clamp(t.X+v.X, 0, maxX)
		t.Y += v.Y

		if t.Y+b.Height >= field.Height {
			EndSession(w, component.EndFallOut, component.CueFall)
		}
	})
}
