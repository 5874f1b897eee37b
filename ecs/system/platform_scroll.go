package system

import (
	"math"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// PlatformScrollSystem moves every platform up by the current scroll speed,
// drifts moving platforms between the field walls and culls platforms that
// have passed the hazard line.
type PlatformScrollSystem struct{}

func NewPlatformScrollSystem() *PlatformScrollSystem {
	return &PlatformScrollSystem{}
}

func (s *PlatformScrollSystem) Update(w *ecs.World) {
	if w == nil || !running(w) {
		return
	}
	field := playFieldOf(w)
	diff := difficultyOf(w)
	if field == nil || diff == nil {
		return
	}
	cull := hazardLine(w)

	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, p *component.Platform, t *component.Transform, b *component.Body) {
		p.PrevY = t.Y
		t.Y -= diff.ScrollSpeed

		if p.Type == component.PlatformMoving && p.Drift != 0 {
			maxX := field.Width - b.Width
			t.X += p.Drift
			if t.X <= 0 {
				t.X = 0
				p.Drift = math.Abs(p.Drift)
			} else if t.X >= maxX {
				t.X = maxX
				p.Drift = -math.Abs(p.Drift)
			}
		}

		if t.Y+b.Height <= cull {
			ecs.DestroyEntity(w, e)
		}
	})
}
