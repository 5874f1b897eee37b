package entity

import (
	"testing"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

func TestBuildWorld(t *testing.T) {
	w := ecs.NewWorld()
	spec := prefabs.DefaultGameSpec()
	if err := BuildWorld(w, spec, 33); err != nil {
		t.Fatalf("build: %v", err)
	}

	if n := ecs.Count(w, component.PlayerTagComponent.Kind()); n != 1 {
		t.Fatalf("expected exactly one player, got %d", n)
	}
	if n := ecs.Count(w, component.HazardComponent.Kind()); n != 1 {
		t.Fatalf("expected one hazard, got %d", n)
	}
	if n := ecs.Count(w, component.PlatformComponent.Kind()); n != 0 {
		t.Fatalf("expected no platforms, got %d", n)
	}

	player, _ := ecs.First(w, component.PlayerTagComponent.Kind())
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 185 || tr.Y != 50 {
		t.Fatalf("expected spawn (185,50), got (%v,%v)", tr.X, tr.Y)
	}
	vel, _ := ecs.Get(w, player, component.VelocityComponent.Kind())
	if vel.Y != spec.Player.FallSpeed {
		t.Fatalf("expected initial fall speed %v, got %v", spec.Player.FallSpeed, vel.Y)
	}

	state, _ := ecs.First(w, component.SessionComponent.Kind())
	sess, _ := ecs.Get(w, state, component.SessionComponent.Kind())
	if sess.State != component.SessionNotStarted {
		t.Fatalf("expected NotStarted, got %v", sess.State)
	}
	score, _ := ecs.Get(w, state, component.ScoreComponent.Kind())
	if score.Value != 0 || score.Level != 1 || score.High != 33 {
		t.Fatalf("unexpected score %+v", score)
	}
	timer, _ := ecs.Get(w, state, component.LevelTimerComponent.Kind())
	if timer.Interval != 600 || timer.Armed {
		t.Fatalf("unexpected timer %+v", timer)
	}
}

func TestNewPlatformDriftOnlyForMoving(t *testing.T) {
	w := ecs.NewWorld()
	cases := []struct {
		kind component.PlatformType
		want float64
	}{
		{component.PlatformNormal, 0},
		{component.PlatformMoving, -2},
		{component.PlatformJump, 0},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			e, err := NewPlatform(w, 10, 20, 100, 10, c.kind, -2)
			if err != nil {
				t.Fatalf("new platform: %v", err)
			}
			p, _ := ecs.Get(w, e, component.PlatformComponent.Kind())
			if p.Drift != c.want || p.PrevY != 20 {
				t.Fatalf("unexpected platform %+v", p)
			}
		})
	}
}
