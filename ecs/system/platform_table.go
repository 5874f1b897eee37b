package system

import (
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
)

// Rand is the randomness the spawner draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type PlatformWeight struct {
	Type   component.PlatformType
	Weight float64
}

// PlatformTable maps a uniform draw onto platform types by relative weight.
type PlatformTable []PlatformWeight

func NewPlatformTable(weights prefabs.WeightsSpec) PlatformTable {
	return PlatformTable{
		{Type: component.PlatformNormal, Weight: weights.Normal},
		{Type: component.PlatformMoving, Weight: weights.Moving},
		{Type: component.PlatformJump, Weight: weights.Jump},
	}
}

// Pick returns the type whose cumulative weight band contains u in [0, 1).
func (t PlatformTable) Pick(u float64) component.PlatformType {
	total := 0.0
	for _, entry := range t {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}
	if total <= 0 {
		return component.PlatformNormal
	}

	target := u * total
	acc := 0.0
	for _, entry := range t {
		if entry.Weight <= 0 {
			continue
		}
		acc += entry.Weight
		if target < acc {
			return entry.Type
		}
	}
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Weight > 0 {
			return t[i].Type
		}
	}
	return component.PlatformNormal
}
