package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// DifficultySystem re-evaluates a tengo script whenever the level changes.
// The script sees level, base_spawn_rate and base_scroll_speed and assigns
// spawn_rate and scroll_speed. A script that fails to load, compile or run
// disables the system and the base tunables stay in effect.
type DifficultySystem struct {
	scriptPath string
	base       component.Difficulty

	compiled  *tengo.Compiled
	lastLevel int
	disabled  bool
}

func NewDifficultySystem(spec *prefabs.GameSpec) *DifficultySystem {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	return &DifficultySystem{
		scriptPath: spec.Difficulty.Script,
		base: component.Difficulty{
			SpawnRate:   spec.Spawn.Rate,
			ScrollSpeed: spec.Platform.ScrollSpeed,
		},
	}
}

func (s *DifficultySystem) Update(w *ecs.World) {
	if s == nil || s.disabled || s.scriptPath == "" || w == nil || !running(w) {
		return
	}
	score := scoreOf(w)
	diff := difficultyOf(w)
	if score == nil || diff == nil || score.Level == s.lastLevel {
		return
	}
	s.lastLevel = score.Level

	next, err := s.evaluate(score.Level)
	if err != nil {
		log.Printf("difficulty: %s: %v (using base tunables)", s.scriptPath, err)
		s.disabled = true
		*diff = s.base
		return
	}
	*diff = next
}

func (s *DifficultySystem) evaluate(level int) (component.Difficulty, error) {
	if s.compiled == nil {
		compiled, err := compileDifficulty(s.scriptPath)
		if err != nil {
			return component.Difficulty{}, err
		}
		s.compiled = compiled
	}

	if err := s.compiled.Set("level", level); err != nil {
		return component.Difficulty{}, err
	}
	if err := s.compiled.Set("base_spawn_rate", s.base.SpawnRate); err != nil {
		return component.Difficulty{}, err
	}
	if err := s.compiled.Set("base_scroll_speed", s.base.ScrollSpeed); err != nil {
		return component.Difficulty{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return component.Difficulty{}, fmt.Errorf("run: %w", err)
	}

	rate := s.compiled.Get("spawn_rate").Float()
	speed := s.compiled.Get("scroll_speed").Float()
	if math.IsNaN(rate) || math.IsNaN(speed) || speed <= 0 {
		return component.Difficulty{}, fmt.Errorf("script produced spawn_rate=%v scroll_speed=%v", rate, speed)
	}
	return component.Difficulty{
		SpawnRate:   math.Min(math.Max(rate, 0), 1),
		ScrollSpeed: speed,
	}, nil
}

func compileDifficulty(path string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("level", 1)
	_ = script.Add("base_spawn_rate", 0.0)
	_ = script.Add("base_scroll_speed", 0.0)
	_ = script.Add("spawn_rate", 0.0)
	_ = script.Add("scroll_speed", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
