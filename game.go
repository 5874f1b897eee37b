package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/climber/assets"
	"github.com/milk9111/climber/common"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/ecs/system"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
	"github.com/milk9111/climber/session"
)

const overlayFadeRate = 0.15

type GameOptions struct {
	Debug bool
	Store save.Store
	Seed  uint64
	Watch bool
}

type Game struct {
	spec    *prefabs.GameSpec
	session *session.Session
	render  *system.RenderSystem
	watcher *prefabs.Watcher

	overlay      *ebitenui.UI
	overlayState component.SessionState
	fade         float32
}

func NewGame(spec *prefabs.GameSpec, opts GameOptions) (*Game, error) {
	sessionOpts := []session.Option{
		session.WithStore(opts.Store),
		session.WithKeys(system.EbitenKeys{}),
		session.WithSound(assets.NewSounds(spec)),
		session.WithOnEnd(func(end system.SessionEnded) {
			log.Printf("session ended: %s at level %d, score %d (best %d)", end.Reason, end.Level, end.Score, end.HighScore)
		}),
	}
	if opts.Seed != 0 {
		sessionOpts = append(sessionOpts, session.WithSeed(opts.Seed))
	}

	s, err := session.New(spec, sessionOpts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		spec:         spec,
		session:      s,
		render:       system.NewRenderSystem(spec),
		overlayState: -1,
	}
	g.render.Debug = opts.Debug

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollReload()

	g.session.Tick()

	state := g.session.State()
	if state == component.SessionRunning {
		g.fade = 0
		return nil
	}
	if state != g.overlayState {
		g.overlay = NewSessionUI(g, state)
		g.overlayState = state
	}
	g.fade = common.Lerp(g.fade, 1, overlayFadeRate)
	g.overlay.Update()
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefab watcher: %v", err)
		}
	default:
	}
	if !g.watcher.Changed() {
		return
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("reload %s: %v", prefabs.GameFile, err)
		return
	}
	if err := g.session.SetSpec(spec); err != nil {
		log.Printf("reload %s: %v", prefabs.GameFile, err)
		return
	}
	g.spec = spec
	debug := g.render.Debug
	g.render = system.NewRenderSystem(spec)
	g.render.Debug = debug
	log.Printf("reloaded %s", prefabs.GameFile)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.session.World(), screen)

	if g.session.State() == component.SessionRunning || g.overlay == nil {
		return
	}
	dim := color.NRGBA{A: uint8(common.Lerp(0, 140, g.fade))}
	vector.FillRect(screen, 0, 0, float32(g.spec.Field.Width), float32(g.spec.Field.Height), dim, false)
	g.overlay.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.Field.Width, g.spec.Field.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.spec.Field.Width), int(g.spec.Field.Height)
}
