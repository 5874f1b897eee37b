package system

import (
	"math"
	"testing"

	"github.com/milk9111/climber/prefabs"
)

func TestDifficultyScript(t *testing.T) {
	spec := prefabs.DefaultGameSpec()
	spec.Difficulty.Script = "difficulty.tengo"

	cases := []struct {
		level      int
		wantRate   float64
		wantScroll float64
	}{
		{1, 0.1, 2},
		{11, 0.11, 2.25},
		{95, 0.19, 4},
	}
	for _, c := range cases {
		w := newRunningWorld(t, spec)
		scoreOf(w).Level = c.level

		NewDifficultySystem(spec).Update(w)

		diff := difficultyOf(w)
		if math.Abs(diff.SpawnRate-c.wantRate) > 1e-9 || math.Abs(diff.ScrollSpeed-c.wantScroll) > 1e-9 {
			t.Fatalf("level %d: expected rate %v scroll %v, got %v/%v", c.level, c.wantRate, c.wantScroll, diff.SpawnRate, diff.ScrollSpeed)
		}
	}
}

func TestDifficultyBrokenScriptKeepsBase(t *testing.T) {
	spec := prefabs.DefaultGameSpec()
	spec.Difficulty.Script = "does_not_exist.tengo"
	w := newRunningWorld(t, spec)
	scoreOf(w).Level = 30

	sys := NewDifficultySystem(spec)
	sys.Update(w)

	diff := difficultyOf(w)
	if diff.SpawnRate != spec.Spawn.Rate || diff.ScrollSpeed != spec.Platform.ScrollSpeed {
		t.Fatalf("expected base tunables, got %+v", diff)
	}
	if !sys.disabled {
		t.Fatalf("expected the system to disable itself")
	}
}

func TestDifficultyWithoutScript(t *testing.T) {
	w := newRunningWorld(t, nil)
	scoreOf(w).Level = 50
	NewDifficultySystem(prefabs.DefaultGameSpec()).Update(w)
	if diff := difficultyOf(w); diff.SpawnRate != 0.1 || diff.ScrollSpeed != 2 {
		t.Fatalf("expected unchanged tunables, got %+v", diff)
	}
}
