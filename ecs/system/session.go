package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const (
	// EventSessionEnded carries a SessionEnded payload.
	EventSessionEnded = "session_ended"
	// EventSessionReset is pushed after the world has been rebuilt for a new session.
	EventSessionReset = "session_reset"
)

// SessionEnded is the summary published when a session reaches a terminal condition.
type SessionEnded struct {
	Reason    component.EndReason
	Level     int
	Score     int
	HighScore int
}

// SessionSystem moves the session between its states from player input.
type SessionSystem struct{}

func NewSessionSystem() *SessionSystem {
	return &SessionSystem{}
}

func (s *SessionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	sess := sessionOf(w)
	if sess == nil {
		return
	}

	var input *component.Input
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		input, _ = ecs.Get(w, player, component.InputComponent.Kind())
	}
	if input == nil {
		return
	}

	switch sess.State {
	case component.SessionNotStarted:
		if input.Confirm || input.Left || input.Right {
			StartSession(w)
		}
	case component.SessionEnded:
		if input.Restart {
			RequestReset(w)
		}
	}
}

func sessionEntity(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.SessionComponent.Kind())
}

func sessionOf(w *ecs.World) *component.Session {
	e, ok := sessionEntity(w)
	if !ok {
		return nil
	}
	sess, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return sess
}

func scoreOf(w *ecs.World) *component.Score {
	e, ok := sessionEntity(w)
	if !ok {
		return nil
	}
	score, _ := ecs.Get(w, e, component.ScoreComponent.Kind())
	return score
}

func playFieldOf(w *ecs.World) *component.PlayField {
	e, ok := sessionEntity(w)
	if !ok {
		return nil
	}
	field, _ := ecs.Get(w, e, component.PlayFieldComponent.Kind())
	return field
}

func difficultyOf(w *ecs.World) *component.Difficulty {
	e, ok := sessionEntity(w)
	if !ok {
		return nil
	}
	diff, _ := ecs.Get(w, e, component.DifficultyComponent.Kind())
	return diff
}

// running reports whether gameplay systems may mutate the world this tick.
func running(w *ecs.World) bool {
	sess := sessionOf(w)
	return sess != nil && sess.State == component.SessionRunning
}

// hazardLine returns the lowest bottom edge of any hazard, or 0 when there is none.
func hazardLine(w *ecs.World) float64 {
	line := 0.0
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Hazard, t *component.Transform, b *component.Body) {
		if bottom := t.Y + b.Height; bottom > line {
			line = bottom
		}
	})
	return line
}

// StartSession moves a NotStarted session to Running. It reports whether
// the transition happened.
func StartSession(w *ecs.World) bool {
	e, ok := sessionEntity(w)
	if !ok {
		return false
	}
	sess, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	if sess == nil || sess.State != component.SessionNotStarted {
		return false
	}

	sess.State = component.SessionRunning
	sess.Reason = component.EndNone
	if timer, ok := ecs.Get(w, e, component.LevelTimerComponent.Kind()); ok {
		timer.Frames = timer.Interval
		timer.Armed = true
	}

	RequestSound(w, component.CueStart, component.SoundPlay)
	RequestSound(w, component.CueMusic, component.SoundLoop)
	return true
}

// EndSession moves a Running session to Ended exactly once, publishing a
// SessionEnded event and the given cue.
func EndSession(w *ecs.World, reason component.EndReason, cue component.SoundCue) bool {
	e, ok := sessionEntity(w)
	if !ok {
		return false
	}
	sess, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	if sess == nil || sess.State != component.SessionRunning {
		return false
	}

	sess.State = component.SessionEnded
	sess.Reason = reason

	summary := SessionEnded{Reason: reason}
	if score, ok := ecs.Get(w, e, component.ScoreComponent.Kind()); ok {
		sess.FinalLevel = score.Level
		summary.Level = score.Level
		summary.Score = score.Value
		summary.HighScore = score.High
	}
	if timer, ok := ecs.Get(w, e, component.LevelTimerComponent.Kind()); ok {
		timer.Armed = false
	}

	RequestSound(w, component.CueMusic, component.SoundStop)
	if cue != "" {
		RequestSound(w, cue, component.SoundPlay)
	}
	w.Events().Push(ecs.Event{Type: EventSessionEnded, Data: summary})
	return true
}

// RequestReset queues a rebuild of the world. Only an Ended session can be reset.
func RequestReset(w *ecs.World) bool {
	sess := sessionOf(w)
	if sess == nil || sess.State != component.SessionEnded {
		return false
	}
	if ecs.Count(w, component.ResetRequestComponent.Kind()) > 0 {
		return true
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.ResetRequestComponent.Kind(), &component.ResetRequest{})
	return true
}
