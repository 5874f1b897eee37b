package session

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/system"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
)

func noPlatforms() *prefabs.GameSpec {
	spec := prefabs.DefaultGameSpec()
	spec.Spawn.Rate = 0
	return spec
}

func runUntilEnded(t *testing.T, s *Session, limit int) {
	t.Helper()
	for i := 0; i < limit && s.State() != component.SessionEnded; i++ {
		s.Tick()
	}
	if s.State() != component.SessionEnded {
		t.Fatalf("session still %v after %d ticks", s.State(), limit)
	}
}

func TestFallOutWithoutPlatforms(t *testing.T) {
	var ends []system.SessionEnded
	s, err := New(noPlatforms(), WithSeed(1), WithOnEnd(func(e system.SessionEnded) { ends = append(ends, e) }))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !s.Start() {
		t.Fatalf("start failed")
	}

	runUntilEnded(t, s, 1000)

	if s.Ticks() > 275 {
		t.Fatalf("expected fall-out within 275 ticks, took %d", s.Ticks())
	}
	if s.Ticks() != 260 {
		t.Fatalf("expected the bottom edge to leave the field on tick 260, got %d", s.Ticks())
	}
	res, ok := s.Result()
	if !ok || res.Reason != component.EndFallOut {
		t.Fatalf("expected fall-out result, got %+v ok=%v", res, ok)
	}
	if len(ends) != 1 {
		t.Fatalf("expected one end callback, got %d", len(ends))
	}
	if s.Score() < 50 || s.Score() > 57 {
		t.Fatalf("unexpected final score %d", s.Score())
	}

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if len(ends) != 1 || s.State() != component.SessionEnded {
		t.Fatalf("an ended session must stay ended without re-firing")
	}
}

func TestNotStartedIsFrozen(t *testing.T) {
	s, err := New(nil, WithSeed(2))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if s.State() != component.SessionNotStarted || s.Ticks() != 0 {
		t.Fatalf("expected an idle NotStarted session, got %v after %d ticks", s.State(), s.Ticks())
	}
	if n := ecs.Count(s.World(), component.PlatformComponent.Kind()); n != 0 {
		t.Fatalf("expected no platforms before start, got %d", n)
	}
}

func TestRestart(t *testing.T) {
	store := &save.MemoryStore{}
	s, err := New(noPlatforms(), WithSeed(3), WithStore(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Restart() {
		t.Fatalf("restart must be ignored before the session ends")
	}
	s.Start()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Restart() {
		t.Fatalf("restart must be ignored while running")
	}

	runUntilEnded(t, s, 1000)
	high := s.HighScore()
	if high == 0 {
		t.Fatalf("expected a high score after a session")
	}

	if !s.Restart() {
		t.Fatalf("restart after end should succeed")
	}
	if s.State() != component.SessionNotStarted || s.Score() != 0 || s.Level() != 1 {
		t.Fatalf("expected a fresh session, got state=%v score=%d level=%d", s.State(), s.Score(), s.Level())
	}
	if s.HighScore() != high {
		t.Fatalf("high score must survive restart, had %d got %d", high, s.HighScore())
	}
	if _, ok := s.Result(); ok {
		t.Fatalf("result should clear on restart")
	}
	if stored, _ := store.Load(); stored != high {
		t.Fatalf("expected persisted high score %d, got %d", high, stored)
	}
}

type scriptedKeys struct {
	restart bool
}

func (k *scriptedKeys) Left() bool    { return false }
func (k *scriptedKeys) Right() bool   { return false }
func (k *scriptedKeys) Confirm() bool { return false }
func (k *scriptedKeys) Restart() bool { return k.restart }

func TestRestartFromKeys(t *testing.T) {
	keys := &scriptedKeys{}
	s, err := New(noPlatforms(), WithSeed(4), WithKeys(keys))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s.Start()
	runUntilEnded(t, s, 1000)

	keys.restart = true
	s.Tick()
	keys.restart = false
	if s.State() != component.SessionNotStarted {
		t.Fatalf("expected restart key to reset, got %v", s.State())
	}
}

func TestHighScoreAcrossSessions(t *testing.T) {
	store := &save.MemoryStore{}
	first, err := New(noPlatforms(), WithSeed(5), WithStore(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	first.Start()
	runUntilEnded(t, first, 1000)

	second, err := New(noPlatforms(), WithSeed(6), WithStore(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if second.HighScore() != first.HighScore() {
		t.Fatalf("expected loaded high score %d, got %d", first.HighScore(), second.HighScore())
	}

	second.Start()
	prev := second.HighScore()
	for i := 0; i < 300 && second.State() == component.SessionRunning; i++ {
		second.Tick()
		if second.HighScore() < prev {
			t.Fatalf("high score decreased from %d to %d", prev, second.HighScore())
		}
		prev = second.HighScore()
	}
}

type cueLog struct {
	played []component.SoundCue
}

func (c *cueLog) Play(cue component.SoundCue) { c.played = append(c.played, cue) }
func (c *cueLog) Loop(component.SoundCue)     {}
func (c *cueLog) Stop(component.SoundCue)     {}

func TestLevelCapVictory(t *testing.T) {
	spec := noPlatforms()
	spec.Level.ScorePerLevel = 1
	spec.Level.Max = 3
	cues := &cueLog{}
	s, err := New(spec, WithSeed(7), WithSound(cues))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s.Start()
	s.Tick()

	res, ok := s.Result()
	if !ok || res.Reason != component.EndLevelCap || res.Level != 3 {
		t.Fatalf("expected level cap at 3, got %+v ok=%v", res, ok)
	}
	found := false
	for _, cue := range cues.played {
		if cue == component.CueVictory {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the victory cue, got %v", cues.played)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() (int, int, int) {
		s, err := New(nil, WithSeed(42))
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		s.Start()
		for i := 0; i < 2000 && s.State() == component.SessionRunning; i++ {
			s.Tick()
		}
		spawned, _ := s.SpawnStats()
		return s.Ticks(), s.Score(), spawned
	}

	t1, s1, p1 := run()
	t2, s2, p2 := run()
	if t1 != t2 || s1 != s2 || p1 != p2 {
		t.Fatalf("runs diverged: (%d,%d,%d) vs (%d,%d,%d)", t1, s1, p1, t2, s2, p2)
	}
}

func TestSetSpecRebuildsIdleSession(t *testing.T) {
	s, err := New(nil, WithSeed(8))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	spec := prefabs.DefaultGameSpec()
	spec.Player.SpawnY = 120
	if err := s.SetSpec(spec); err != nil {
		t.Fatalf("set spec: %v", err)
	}
	player, _ := ecs.First(s.World(), component.PlayerTagComponent.Kind())
	tr, _ := ecs.Get(s.World(), player, component.TransformComponent.Kind())
	if tr.Y != 120 {
		t.Fatalf("expected rebuilt player at y=120, got %v", tr.Y)
	}

	bad := prefabs.DefaultGameSpec()
	bad.Spawn.Rate = 2
	if err := s.SetSpec(bad); err == nil {
		t.Fatalf("expected invalid spec to be rejected")
	}
}

type randomKeys struct {
	rng *rand.Rand
	dir int
}

func (k *randomKeys) Left() bool {
	if k.rng.IntN(10) == 0 {
		k.dir = k.rng.IntN(3) - 1
	}
	return k.dir < 0
}
func (k *randomKeys) Right() bool   { return k.dir > 0 }
func (k *randomKeys) Confirm() bool { return false }
func (k *randomKeys) Restart() bool { return false }

func TestPlayerStaysInsideField(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		keys := &randomKeys{rng: rand.New(rand.NewPCG(seed, seed))}
		s, err := New(nil, WithSeed(seed), WithKeys(keys))
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		s.Start()

		spec := s.Spec()
		w := s.World()
		for i := 0; i < 3000 && s.State() == component.SessionRunning; i++ {
			s.Tick()
			player, _ := ecs.First(w, component.PlayerTagComponent.Kind())
			tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
			if tr.X < 0 || tr.X > spec.Field.Width-spec.Player.Width {
				t.Fatalf("seed %d tick %d: player x %v left the field", seed, i, tr.X)
			}
		}
	}
}
