package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

const landingEpsilon = 1e-6

// CollisionSystem resolves one landing per tick. A platform qualifies when it
// overlaps the player horizontally and the player's bottom edge crossed the
// platform's top edge this tick: it was at or above the platform's previous
// top and is now at or below its current top.
type CollisionSystem struct {
	tieBreak    string
	jumpImpulse float64
	jumpGrounds bool
}

func NewCollisionSystem(spec *prefabs.GameSpec) *CollisionSystem {
	s := &CollisionSystem{tieBreak: prefabs.TieBreakNearest, jumpImpulse: -10}
	if spec != nil {
		s.tieBreak = spec.Collision.TieBreak
		s.jumpImpulse = spec.Platform.JumpImpulse
		s.jumpGrounds = spec.Platform.JumpGrounds
	}
	return s
}

type landing struct {
	platform *component.Platform
	top      float64
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !running(w) {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	b, _ := ecs.Get(w, player, component.BodyComponent.Kind())
	v, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	if t == nil || b == nil || v == nil {
		return
	}

	if hit := s.findLanding(w, p, t, b); hit != nil {
		s.land(p, t, b, v, hit)
	} else {
		p.Grounded = false
		p.CarryX = 0
		v.Y = fallSpeed(p, v.Y)
	}

	if t.Y <= hazardLine(w) {
		EndSession(w, component.EndHazard, component.CueHazard)
	}
}

func (s *CollisionSystem) findLanding(w *ecs.World, p *component.Player, t *component.Transform, b *component.Body) *landing {
	prevBottom := p.PrevY + b.Height
	bottom := t.Y + b.Height

	var hit *landing
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, pl *component.Platform, pt *component.Transform, pb *component.Body) {
		if t.X >= pt.X+pb.Width || t.X+b.Width <= pt.X {
			return
		}
		if prevBottom > pl.PrevY+landingEpsilon || bottom < pt.Y {
			return
		}
		switch s.tieBreak {
		case prefabs.TieBreakLast:
			hit = &landing{platform: pl, top: pt.Y}
		default:
			if hit == nil || pt.Y < hit.top {
				hit = &landing{platform: pl, top: pt.Y}
			}
		}
	})
	return hit
}

func (s *CollisionSystem) land(p *component.Player, t *component.Transform, b *component.Body, v *component.Velocity, hit *landing) {
	t.Y = hit.top - b.Height
	p.CarryX = 0

	switch hit.platform.Type {
	case component.PlatformJump:
		v.Y = s.jumpImpulse
		p.Grounded = s.jumpGrounds
	case component.PlatformMoving:
		v.Y = 0
		p.Grounded = true
		p.CarryX = hit.platform.Drift
		v.X += hit.platform.Drift
	default:
		v.Y = 0
		p.Grounded = true
	}
}

func fallSpeed(p *component.Player, vy float64) float64 {
	if p.GravityAccel <= 0 {
		return p.FallSpeed
	}
	vy += p.GravityAccel
	if vy > p.FallSpeed {
		return p.FallSpeed
	}
	return vy
}
