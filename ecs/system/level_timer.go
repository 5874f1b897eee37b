package system

import (
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// LevelTimerSystem advances the level on a fixed tick interval. The timer
// only counts while the session is Running, so a finished session can never
// be advanced by a late tick.
type LevelTimerSystem struct {
	enabled  bool
	maxLevel int
}

func NewLevelTimerSystem(spec *prefabs.GameSpec) *LevelTimerSystem {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	return &LevelTimerSystem{
		enabled:  spec.Level.Mode == prefabs.LevelModeTimer,
		maxLevel: spec.Level.Max,
	}
}

func (s *LevelTimerSystem) Update(w *ecs.World) {
	if s == nil || !s.enabled || w == nil || !running(w) {
		return
	}
	e, ok := sessionEntity(w)
	if !ok {
		return
	}
	timer, ok := ecs.Get(w, e, component.LevelTimerComponent.Kind())
	if !ok || !timer.Armed {
		return
	}
	score, ok := ecs.Get(w, e, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	timer.Frames--
	if timer.Frames > 0 {
		return
	}
	timer.Frames = timer.Interval

	score.Level++
	if score.Level > s.maxLevel {
		score.Level = s.maxLevel
		EndSession(w, component.EndLevelCap, component.CueVictory)
	}
}
