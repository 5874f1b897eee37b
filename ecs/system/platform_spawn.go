package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/entity"
	"github.com/milk9111/climber/prefabs"
)

// PlatformSpawnSystem rolls once per tick against the current spawn rate and
// places a new platform in the band below the field. Candidates that touch
// the player or sit vertically too close to an existing platform are
// rejected; when every attempt is rejected the tick spawns nothing.
type PlatformSpawnSystem struct {
	rng   Rand
	table PlatformTable

	width, height float64
	drift         float64

	minSpacing  float64
	columns     int
	bandOffset  float64
	bandHeight  float64
	maxAttempts int

	spawned int
	skipped int
}

func NewPlatformSpawnSystem(spec *prefabs.GameSpec, rng Rand) *PlatformSpawnSystem {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	return &PlatformSpawnSystem{
		rng:         rng,
		table:       NewPlatformTable(spec.Spawn.Weights),
		width:       spec.Platform.Width,
		height:      spec.Platform.Height,
		drift:       spec.Platform.DriftSpeed,
		minSpacing:  spec.Spawn.MinSpacing,
		columns:     spec.Spawn.GridColumns,
		bandOffset:  spec.Spawn.BandOffset,
		bandHeight:  spec.Spawn.BandHeight,
		maxAttempts: spec.Spawn.MaxAttempts,
	}
}

// Spawned reports how many platforms this system has created.
func (s *PlatformSpawnSystem) Spawned() int { return s.spawned }

// Skipped reports how many successful spawn rolls found no valid position.
func (s *PlatformSpawnSystem) Skipped() int { return s.skipped }

func (s *PlatformSpawnSystem) Update(w *ecs.World) {
	if s == nil || s.rng == nil || w == nil || !running(w) {
		return
	}
	field := playFieldOf(w)
	diff := difficultyOf(w)
	if field == nil || diff == nil {
		return
	}

	if s.rng.Float64() >= diff.SpawnRate {
		return
	}

	x, y, ok := s.place(w, field)
	if !ok {
		s.skipped++
		return
	}

	kind := s.table.Pick(s.rng.Float64())
	drift := 0.0
	if kind == component.PlatformMoving {
		drift = s.drift
		if s.rng.IntN(2) == 0 {
			drift = -drift
		}
	}

	if _, err := entity.NewPlatform(w, x, y, s.width, s.height, kind, drift); err != nil {
		log.Printf("spawn: %v", err)
		return
	}
	s.spawned++
}

func (s *PlatformSpawnSystem) place(w *ecs.World, field *component.PlayField) (float64, float64, bool) {
	var player cp.BB
	hasPlayer := false
	if pe, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		t, _ := ecs.Get(w, pe, component.TransformComponent.Kind())
		b, _ := ecs.Get(w, pe, component.BodyComponent.Kind())
		if t != nil && b != nil {
			player = component.Bounds(t, b)
			hasPlayer = true
		}
	}

	var tops []float64
	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, t *component.Transform) {
		tops = append(tops, t.Y)
	})

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		x := s.candidateX(field.Width)
		y := field.Height + s.bandOffset + s.rng.Float64()*s.bandHeight

		box := cp.BB{L: x, B: y, R: x + s.width, T: y + s.height}
		if hasPlayer && box.Intersects(player) {
			continue
		}
		if tooClose(y, tops, s.minSpacing) {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

func (s *PlatformSpawnSystem) candidateX(fieldWidth float64) float64 {
	maxX := math.Max(0, fieldWidth-s.width)
	switch {
	case s.columns == 1:
		return maxX / 2
	case s.columns > 1:
		col := s.rng.IntN(s.columns)
		return float64(col) * maxX / float64(s.columns-1)
	default:
		return s.rng.Float64() * maxX
	}
}

func tooClose(y float64, tops []float64, spacing float64) bool {
	for _, top := range tops {
		if math.Abs(y-top) < spacing {
			return true
		}
	}
	return false
}
