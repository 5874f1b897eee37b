package system

import (
	"log"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/prefabs"
)

// ResetSystem consumes ResetRequest entities and rebuilds the world for a
// fresh NotStarted session, carrying the high score over.
type ResetSystem struct {
	spec *prefabs.GameSpec
}

func NewResetSystem(spec *prefabs.GameSpec) *ResetSystem {
	return &ResetSystem{spec: spec}
}

// SetSpec swaps the tunables used for the next rebuild.
func (r *ResetSystem) SetSpec(spec *prefabs.GameSpec) {
	if r == nil || spec == nil {
		return
	}
	r.spec = spec
}

func (r *ResetSystem) Update(w *ecs.World) {
	if r == nil || w == nil || r.spec == nil {
		return
	}
	if ecs.Count(w, component.ResetRequestComponent.Kind()) == 0 {
		return
	}

	high := 0
	if score := scoreOf(w); score != nil {
		high = score.High
	}

	ecs.Clear(w)
	if err := entity.BuildWorld(w, r.spec, high); err != nil {
		log.Printf("reset: rebuild world: %v", err)
		return
	}
	w.Events().Push(ecs.Event{Type: EventSessionReset})
}
