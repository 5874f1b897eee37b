package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
	"golang.org/x/image/colornames"
)

const spikeToothWidth = 20

// RenderSystem draws the field, hazard, platforms, player and the HUD.
type RenderSystem struct {
	background color.Color
	hazard     color.Color
	player     color.Color
	platforms  map[component.PlatformType]color.Color

	Debug bool
}

func NewRenderSystem(spec *prefabs.GameSpec) *RenderSystem {
	if spec == nil {
		spec = prefabs.DefaultGameSpec()
	}
	return &RenderSystem{
		background: spec.Field.Background.ColorOr(colornames.White),
		hazard:     spec.Hazard.Color.ColorOr(colornames.Red),
		player:     spec.Player.Color.ColorOr(colornames.Blue),
		platforms: map[component.PlatformType]color.Color{
			component.PlatformNormal: spec.Platform.Colors.Normal.ColorOr(colornames.Green),
			component.PlatformMoving: spec.Platform.Colors.Moving.ColorOr(colornames.Orange),
			component.PlatformJump:   spec.Platform.Colors.Jump.ColorOr(colornames.Purple),
		},
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.background)

	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform, b *component.Body) {
		clr, ok := r.platforms[p.Type]
		if !ok {
			clr = colornames.Gray
		}
		vector.FillRect(screen, float32(t.X), float32(t.Y), float32(b.Width), float32(b.Height), clr, false)
	})

	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Hazard, t *component.Transform, b *component.Body) {
		r.drawSpikes(screen, t, b)
	})

	ecs.ForEach4(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.PlayerTagComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform, b *component.Body, _ *component.PlayerTag) {
		vector.FillRect(screen, float32(t.X), float32(t.Y), float32(b.Width), float32(b.Height), r.player, false)

		eyeX := t.X + b.Width*0.7
		if p.Facing == component.FacingLeft {
			eyeX = t.X + b.Width*0.3
		}
		vector.DrawFilledCircle(screen, float32(eyeX), float32(t.Y+b.Height*0.35), float32(b.Width*0.1), colornames.White, true)
	})

	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawSpikes(screen *ebiten.Image, t *component.Transform, b *component.Body) {
	vector.FillRect(screen, float32(t.X), float32(t.Y), float32(b.Width), float32(b.Height)/2, r.hazard, false)

	tip := float32(t.Y + b.Height)
	for x := t.X; x < t.X+b.Width; x += spikeToothWidth {
		left, mid, right := float32(x), float32(x+spikeToothWidth/2), float32(x+spikeToothWidth)
		vector.StrokeLine(screen, left, float32(t.Y), mid, tip, 2, r.hazard, true)
		vector.StrokeLine(screen, mid, tip, right, float32(t.Y), 2, r.hazard, true)
	}
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	score := scoreOf(w)
	if score == nil {
		return
	}
	hud := fmt.Sprintf("Score: %d  Level: %d  High: %d", score.Value, score.Level, score.High)
	if r.Debug {
		state := "?"
		if sess := sessionOf(w); sess != nil {
			state = sess.State.String()
		}
		hud += fmt.Sprintf("\nTPS: %.0f  Platforms: %d  State: %s", ebiten.ActualTPS(), ecs.Count(w, component.PlatformComponent.Kind()), state)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 24)
}
