package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// SoundPlayer plays named cues. Implementations must tolerate unknown cues.
type SoundPlayer interface {
	Play(cue component.SoundCue)
	Loop(cue component.SoundCue)
	Stop(cue component.SoundCue)
}

type SoundSystem struct {
	player SoundPlayer
}

func NewSoundSystem(player SoundPlayer) *SoundSystem {
	return &SoundSystem{player: player}
}

// RequestSound queues a cue for the sound system.
func RequestSound(w *ecs.World, cue component.SoundCue, action component.SoundAction) {
	if w == nil || cue == "" {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.SoundRequestComponent.Kind(), &component.SoundRequest{Cue: cue, Action: action})
}

func (s *SoundSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var requests []component.SoundRequest
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		requests = append(requests, *req)
		ecs.DestroyEntity(w, e)
	})

	if s.player == nil {
		return
	}
	for _, req := range requests {
		switch req.Action {
		case component.SoundLoop:
			s.player.Loop(req.Cue)
		case component.SoundStop:
			s.player.Stop(req.Cue)
		default:
			s.player.Play(req.Cue)
		}
	}
}
