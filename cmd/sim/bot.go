package main

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

const randomHoldTicks = 15

// bot is a KeySource that decides its direction once per tick, when Left is
// asked for.
type bot struct {
	mode  string
	rng   *rand.Rand
	world *ecs.World

	dir  float64
	hold int
}

func (b *bot) attach(w *ecs.World) {
	b.world = w
}

func (b *bot) Left() bool {
	b.decide()
	return b.dir < 0
}

func (b *bot) Right() bool   { return b.dir > 0 }
func (b *bot) Confirm() bool { return false }
func (b *bot) Restart() bool { return false }

func (b *bot) decide() {
	switch b.mode {
	case "random":
		if b.hold > 0 {
			b.hold--
			return
		}
		b.dir = float64(b.rng.IntN(3) - 1)
		b.hold = randomHoldTicks
	case "greedy":
		b.dir = b.towardLanding()
	default:
		b.dir = 0
	}
}

// towardLanding steers to the center of the highest platform below the player.
func (b *bot) towardLanding() float64 {
	if b.world == nil {
		return 0
	}
	pe, ok := ecs.First(b.world, component.PlayerTagComponent.Kind())
	if !ok {
		return 0
	}
	pt, _ := ecs.Get(b.world, pe, component.TransformComponent.Kind())
	pb, _ := ecs.Get(b.world, pe, component.BodyComponent.Kind())
	if pt == nil || pb == nil {
		return 0
	}
	bottom := pt.Y + pb.Height
	center := pt.X + pb.Width/2

	bestTop := math.Inf(1)
	target := center
	ecs.ForEach3(b.world, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, t *component.Transform, body *component.Body) {
		if t.Y < bottom || t.Y >= bestTop {
			return
		}
		bestTop = t.Y
		target = t.X + body.Width/2
	})

	switch {
	case target < center-2:
		return -1
	case target > center+2:
		return 1
	default:
		return 0
	}
}
