package system

import (
	"testing"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/prefabs"
)

// seqRand replays fixed draws, cycling when exhausted.
type seqRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func newWorld(t *testing.T, spec *prefabs.GameSpec) *ecs.World {
	t.Helper()
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	w := ecs.NewWorld()
	if err := entity.BuildWorld(w, spec, 0); err != nil {
		t.Fatalf("build world: %v", err)
	}
	return w
}

func newRunningWorld(t *testing.T, spec *prefabs.GameSpec) *ecs.World {
	t.Helper()
	w := newWorld(t, spec)
	if !StartSession(w) {
		t.Fatalf("start session failed")
	}
	NewSoundSystem(nil).Update(w)
	return w
}

type playerParts struct {
	player *component.Player
	t      *component.Transform
	b      *component.Body
	v      *component.Velocity
	input  *component.Input
}

func playerOf(t *testing.T, w *ecs.World) playerParts {
	t.Helper()
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		t.Fatalf("no player")
	}
	var p playerParts
	p.player, _ = ecs.Get(w, e, component.PlayerComponent.Kind())
	p.t, _ = ecs.Get(w, e, component.TransformComponent.Kind())
	p.b, _ = ecs.Get(w, e, component.BodyComponent.Kind())
	p.v, _ = ecs.Get(w, e, component.VelocityComponent.Kind())
	p.input, _ = ecs.Get(w, e, component.InputComponent.Kind())
	if p.player == nil || p.t == nil || p.b == nil || p.v == nil || p.input == nil {
		t.Fatalf("player is missing components")
	}
	return p
}

func addPlatform(t *testing.T, w *ecs.World, x, y, prevY float64, kind component.PlatformType, drift float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlatform(w, x, y, 100, 10, kind, drift)
	if err != nil {
		t.Fatalf("new platform: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PlatformComponent.Kind())
	p.PrevY = prevY
	return e
}

func mustSession(t *testing.T, w *ecs.World) *component.Session {
	t.Helper()
	sess := sessionOf(w)
	if sess == nil {
		t.Fatalf("no session")
	}
	return sess
}

func endedEvents(w *ecs.World) []SessionEnded {
	var out []SessionEnded
	for _, evt := range w.Events().Drain() {
		if evt.Type != EventSessionEnded {
			continue
		}
		if data, ok := evt.Data.(SessionEnded); ok {
			out = append(out, data)
		}
	}
	return out
}
