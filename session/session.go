// Package session runs one climber game headlessly: it owns the world, the
// system schedule and the session lifecycle, and is driven one tick at a time.
package session

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/ecs/system"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
)

type Option func(*Session)

// WithRand sets the randomness used for platform spawning.
func WithRand(rng system.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed makes platform spawning reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithStore(store save.Store) Option {
	return func(s *Session) {
		if store != nil {
			s.store = store
		}
	}
}

func WithSound(player system.SoundPlayer) Option {
	return func(s *Session) {
		s.sound = player
	}
}

func WithKeys(keys system.KeySource) Option {
	return func(s *Session) {
		if keys != nil {
			s.keys = keys
		}
	}
}

// WithOnEnd registers a callback invoked once per finished session.
func WithOnEnd(fn func(system.SessionEnded)) Option {
	return func(s *Session) {
		s.onEnd = fn
	}
}

type Session struct {
	spec  *prefabs.GameSpec
	world *ecs.World

	rng   system.Rand
	store save.Store
	sound system.SoundPlayer
	keys  system.KeySource
	onEnd func(system.SessionEnded)

	control  *ecs.Scheduler
	gameplay *ecs.Scheduler
	audio    *ecs.Scheduler
	reset    *system.ResetSystem
	spawn    *system.PlatformSpawnSystem

	result *system.SessionEnded
}

// idleKeys never reports any input; sessions driven only through Start and
// Restart use it.
type idleKeys struct{}

func (idleKeys) Left() bool    { return false }
func (idleKeys) Right() bool   { return false }
func (idleKeys) Confirm() bool { return false }
func (idleKeys) Restart() bool { return false }

// New builds a NotStarted session. A nil spec uses the built-in defaults.
func New(spec *prefabs.GameSpec, opts ...Option) (*Session, error) {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		spec:  spec,
		world: ecs.NewWorld(),
		store: &save.MemoryStore{},
		keys:  idleKeys{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.rng == nil {
		seed := uint64(time.Now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	high, err := s.store.Load()
	if err != nil {
		log.Printf("session: load high score: %v", err)
		high = 0
	}
	if err := entity.BuildWorld(s.world, spec, high); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.reset = system.NewResetSystem(spec)
	s.control = ecs.NewScheduler(
		system.NewInputSystem(s.keys),
		system.NewSessionSystem(),
		s.reset,
	)
	s.audio = ecs.NewScheduler(system.NewSoundSystem(s.sound))
	s.buildGameplay()
	return s, nil
}

func (s *Session) buildGameplay() {
	s.spawn = system.NewPlatformSpawnSystem(s.spec, s.rng)
	s.gameplay = ecs.NewScheduler(
		system.NewPlayerMovementSystem(),
		system.NewPlatformScrollSystem(),
		system.NewCollisionSystem(s.spec),
		system.NewScoreSystem(s.spec, s.store),
		system.NewLevelTimerSystem(s.spec),
		system.NewDifficultySystem(s.spec),
		s.spawn,
	)
}

// Tick advances the simulation by one fixed step. Gameplay only runs while
// the session is Running.
func (s *Session) Tick() {
	s.control.Update(s.world)

	if sess := s.session(); sess != nil && sess.State == component.SessionRunning {
		s.gameplay.Update(s.world)
		sess.Ticks++
	}

	s.audio.Update(s.world)
	s.dispatchEvents()
}

// Start begins a NotStarted session without waiting for input.
func (s *Session) Start() bool {
	return system.StartSession(s.world)
}

// Restart rebuilds an Ended session in the NotStarted state. It is ignored
// in any other state.
func (s *Session) Restart() bool {
	if !system.RequestReset(s.world) {
		return false
	}
	s.reset.Update(s.world)
	s.dispatchEvents()
	return true
}

// SetSpec swaps the tunables. A NotStarted session is rebuilt at once;
// otherwise the new spec applies from the next restart.
func (s *Session) SetSpec(spec *prefabs.GameSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.spec = spec
	s.reset.SetSpec(spec)

	if s.State() != component.SessionNotStarted {
		return nil
	}
	high := s.HighScore()
	ecs.Clear(s.world)
	if err := entity.BuildWorld(s.world, spec, high); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.buildGameplay()
	return nil
}

func (s *Session) dispatchEvents() {
	for _, evt := range s.world.Events().Drain() {
		switch evt.Type {
		case system.EventSessionEnded:
			data, ok := evt.Data.(system.SessionEnded)
			if !ok {
				continue
			}
			s.result = &data
			if s.onEnd != nil {
				s.onEnd(data)
			}
		case system.EventSessionReset:
			s.result = nil
			s.buildGameplay()
		}
	}
}

func (s *Session) session() *component.Session {
	e, ok := ecs.First(s.world, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	sess, _ := ecs.Get(s.world, e, component.SessionComponent.Kind())
	return sess
}

func (s *Session) score() *component.Score {
	e, ok := ecs.First(s.world, component.ScoreComponent.Kind())
	if !ok {
		return nil
	}
	score, _ := ecs.Get(s.world, e, component.ScoreComponent.Kind())
	return score
}

func (s *Session) State() component.SessionState {
	if sess := s.session(); sess != nil {
		return sess.State
	}
	return component.SessionNotStarted
}

// Ticks reports how many gameplay ticks the current session has run.
func (s *Session) Ticks() int {
	if sess := s.session(); sess != nil {
		return sess.Ticks
	}
	return 0
}

func (s *Session) Score() int {
	if score := s.score(); score != nil {
		return score.Value
	}
	return 0
}

func (s *Session) Level() int {
	if score := s.score(); score != nil {
		return score.Level
	}
	return 1
}

func (s *Session) HighScore() int {
	if score := s.score(); score != nil {
		return score.High
	}
	return 0
}

// Result returns the summary of the current session once it has ended.
func (s *Session) Result() (system.SessionEnded, bool) {
	if s.result == nil {
		return system.SessionEnded{}, false
	}
	return *s.result, true
}

// SpawnStats reports platforms spawned and spawn rolls that found no room
// since the last restart.
func (s *Session) SpawnStats() (spawned, skipped int) {
	return s.spawn.Spawned(), s.spawn.Skipped()
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Spec() *prefabs.GameSpec {
	return s.spec
}
