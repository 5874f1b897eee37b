package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// GameFile is the prefab holding every gameplay tunable.
const GameFile = "climber.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const (
	TieBreakNearest = "nearest"
	TieBreakLast    = "last"

	LevelModeScore = "score"
	LevelModeTimer = "timer"
)

type GameSpec struct {
	Name       string         `yaml:"name"`
	TPS        int            `yaml:"tps"`
	Field      FieldSpec      `yaml:"field"`
	Hazard     HazardSpec     `yaml:"hazard"`
	Player     PlayerSpec     `yaml:"player"`
	Platform   PlatformSpec   `yaml:"platform"`
	Spawn      SpawnSpec      `yaml:"spawn"`
	Collision  CollisionSpec  `yaml:"collision"`
	Level      LevelSpec      `yaml:"level"`
	Difficulty DifficultySpec `yaml:"difficulty"`
	Audio      []AudioSpec    `yaml:"audio"`
}

type FieldSpec struct {
	Width      float64    `yaml:"width"`
	Height     float64    `yaml:"height"`
	Background *YAMLColor `yaml:"background"`
}

type HazardSpec struct {
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
}

type PlayerSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	FallSpeed    float64 `yaml:"fall_speed"`
	GravityAccel float64 `yaml:"gravity_accel"`
	// SpawnX defaults to the horizontal center of the field.
	SpawnX *float64   `yaml:"spawn_x"`
	SpawnY float64    `yaml:"spawn_y"`
	Color  *YAMLColor `yaml:"color"`
}

type PlatformSpec struct {
	Width       float64            `yaml:"width"`
	Height      float64            `yaml:"height"`
	ScrollSpeed float64            `yaml:"scroll_speed"`
	DriftSpeed  float64            `yaml:"drift_speed"`
	JumpImpulse float64            `yaml:"jump_impulse"`
	JumpGrounds bool               `yaml:"jump_grounds"`
	Colors      PlatformColorsSpec `yaml:"colors"`
}

type PlatformColorsSpec struct {
	Normal *YAMLColor `yaml:"normal"`
	Moving *YAMLColor `yaml:"moving"`
	Jump   *YAMLColor `yaml:"jump"`
}

type SpawnSpec struct {
	Rate        float64     `yaml:"rate"`
	MinSpacing  float64     `yaml:"min_spacing"`
	GridColumns int         `yaml:"grid_columns"`
	BandOffset  float64     `yaml:"band_offset"`
	BandHeight  float64     `yaml:"band_height"`
	MaxAttempts int         `yaml:"max_attempts"`
	Weights     WeightsSpec `yaml:"weights"`
}

type WeightsSpec struct {
	Normal float64 `yaml:"normal"`
	Moving float64 `yaml:"moving"`
	Jump   float64 `yaml:"jump"`
}

type CollisionSpec struct {
	TieBreak string `yaml:"tie_break"`
}

type LevelSpec struct {
	Mode          string        `yaml:"mode"`
	ScoreDivisor  float64       `yaml:"score_divisor"`
	ScorePerLevel int           `yaml:"score_per_level"`
	Max           int           `yaml:"max"`
	Interval      time.Duration `yaml:"interval"`
}

type DifficultySpec struct {
	Script string `yaml:"script"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// DefaultGameSpec returns the tunables of the classic game with no
// difficulty script and no audio files.
func DefaultGameSpec() *GameSpec {
	return &GameSpec{
		Name:   "climber",
		TPS:    60,
		Field:  FieldSpec{Width: 400, Height: 600},
		Hazard: HazardSpec{Height: 20},
		Player: PlayerSpec{
			Width:     30,
			Height:    30,
			Speed:     5,
			FallSpeed: 2,
			SpawnY:    50,
		},
		Platform: PlatformSpec{
			Width:       100,
			Height:      10,
			ScrollSpeed: 2,
			DriftSpeed:  2,
			JumpImpulse: -10,
		},
		Spawn: SpawnSpec{
			Rate:        0.1,
			MinSpacing:  40,
			GridColumns: 4,
			BandHeight:  60,
			MaxAttempts: 8,
			Weights:     WeightsSpec{Normal: 0.5, Moving: 0.3, Jump: 0.2},
		},
		Collision: CollisionSpec{TieBreak: TieBreakNearest},
		Level: LevelSpec{
			Mode:          LevelModeScore,
			ScoreDivisor:  10,
			ScorePerLevel: 15,
			Max:           100,
			Interval:      10 * time.Second,
		},
	}
}

// LoadGameSpec reads GameFile (disk first, then embedded) over the defaults.
func LoadGameSpec() (*GameSpec, error) {
	data, err := Load(GameFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", GameFile, err)
	}
	spec, err := DecodeGameSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameFile, err)
	}
	return spec, nil
}

// DecodeGameSpec unmarshals data over DefaultGameSpec and validates the result.
func DecodeGameSpec(data []byte) (*GameSpec, error) {
	spec := DefaultGameSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSpec, fmt.Sprintf(format, args...))
}

// Validate rejects specs the simulation cannot run with.
func (s *GameSpec) Validate() error {
	if s == nil {
		return invalid("nil spec")
	}
	if s.TPS <= 0 {
		return invalid("tps must be positive, got %d", s.TPS)
	}
	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		return invalid("field must have positive size, got %vx%v", s.Field.Width, s.Field.Height)
	}
	if s.Hazard.Height < 0 || s.Hazard.Height >= s.Field.Height {
		return invalid("hazard height %v outside [0, %v)", s.Hazard.Height, s.Field.Height)
	}

	p := s.Player
	if p.Width <= 0 || p.Height <= 0 || p.Width > s.Field.Width || p.Height > s.Field.Height {
		return invalid("player size %vx%v does not fit the field", p.Width, p.Height)
	}
	if p.Speed < 0 || p.FallSpeed <= 0 || p.GravityAccel < 0 {
		return invalid("player speed, fall_speed and gravity_accel must be non-negative (fall_speed positive)")
	}
	if p.SpawnX != nil && (*p.SpawnX < 0 || *p.SpawnX+p.Width > s.Field.Width) {
		return invalid("player spawn_x %v outside the field", *p.SpawnX)
	}

	pl := s.Platform
	if pl.Width <= 0 || pl.Height <= 0 || pl.Width > s.Field.Width {
		return invalid("platform size %vx%v does not fit the field", pl.Width, pl.Height)
	}
	if pl.ScrollSpeed <= 0 || pl.DriftSpeed < 0 {
		return invalid("platform scroll_speed must be positive and drift_speed non-negative")
	}
	if pl.JumpImpulse > 0 {
		return invalid("platform jump_impulse must point up (<= 0), got %v", pl.JumpImpulse)
	}

	sp := s.Spawn
	if sp.Rate < 0 || sp.Rate > 1 {
		return invalid("spawn rate %v outside [0, 1]", sp.Rate)
	}
	if sp.MinSpacing < 0 || sp.GridColumns < 0 || sp.BandHeight < 0 {
		return invalid("spawn min_spacing, grid_columns and band_height must be non-negative")
	}
	if sp.MaxAttempts < 1 {
		return invalid("spawn max_attempts must be at least 1, got %d", sp.MaxAttempts)
	}
	wt := sp.Weights
	if wt.Normal < 0 || wt.Moving < 0 || wt.Jump < 0 || wt.Normal+wt.Moving+wt.Jump <= 0 {
		return invalid("spawn weights must be non-negative with a positive sum")
	}

	switch s.Collision.TieBreak {
	case TieBreakNearest, TieBreakLast:
	default:
		return invalid("unknown collision tie_break %q", s.Collision.TieBreak)
	}

	lv := s.Level
	switch lv.Mode {
	case LevelModeScore:
	case LevelModeTimer:
		if lv.Interval <= 0 {
			return invalid("level interval must be positive in timer mode")
		}
	default:
		return invalid("unknown level mode %q", lv.Mode)
	}
	if lv.ScoreDivisor <= 0 || lv.ScorePerLevel <= 0 || lv.Max < 1 {
		return invalid("level score_divisor, score_per_level and max must be positive")
	}
	return nil
}

// SpawnPoint resolves the player's initial top-left corner.
func (s *GameSpec) SpawnPoint() (float64, float64) {
	x := s.Field.Width/2 - s.Player.Width/2
	if s.Player.SpawnX != nil {
		x = *s.Player.SpawnX
	}
	return x, s.Player.SpawnY
}

// TimerTicks converts the level interval into simulation ticks.
func (s *GameSpec) TimerTicks() int {
	ticks := int(s.Level.Interval.Seconds() * float64(s.TPS))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// AudioFor returns the clip configured for a cue name.
func (s *GameSpec) AudioFor(name string) (AudioSpec, bool) {
	for _, a := range s.Audio {
		if a.Name == name {
			return a, true
		}
	}
	return AudioSpec{}, false
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns c's color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
