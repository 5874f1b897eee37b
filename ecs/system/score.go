package system

import (
	"log"
	"math"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
)

// ScoreSystem derives the score from the deepest point the player reached,
// keeps the high score (persisting it through store) and, in score mode,
// derives the level.
type ScoreSystem struct {
	divisor  float64
	perLevel int
	maxLevel int
	byScore  bool
	store    save.Store
}

func NewScoreSystem(spec *prefabs.GameSpec, store save.Store) *ScoreSystem {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	return &ScoreSystem{
		divisor:  spec.Level.ScoreDivisor,
		perLevel: spec.Level.ScorePerLevel,
		maxLevel: spec.Level.Max,
		byScore:  spec.Level.Mode == prefabs.LevelModeScore,
		store:    store,
	}
}

// LevelForScore is the 1-based level reached at score.
func LevelForScore(score, perLevel int) int {
	if perLevel <= 0 {
		return 1
	}
	return score/perLevel + 1
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !running(w) {
		return
	}
	score := scoreOf(w)
	if score == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if t.Y > score.Peak {
		score.Peak = t.Y
	}
	score.Value = int(math.Floor(score.Peak / s.divisor))

	if score.Value > score.High {
		score.High = score.Value
		if s.store != nil {
			if err := s.store.Save(score.High); err != nil {
				log.Printf("score: save high score: %v", err)
			}
		}
	}

	if !s.byScore {
		return
	}
	level := LevelForScore(score.Value, s.perLevel)
	if level > s.maxLevel {
		score.Level = s.maxLevel
		EndSession(w, component.EndLevelCap, component.CueVictory)
		return
	}
	score.Level = level
}
