package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/save"
)

func main() {
	debug := flag.Bool("debug", false, "show tick rate and entity counts")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for climber.yaml and scripts before the embedded copies")
	savePath := flag.String("save", "", "high score file (defaults to the user config dir)")
	seed := flag.Uint64("seed", 0, "platform spawn seed (0 picks one from the clock)")
	watch := flag.Bool("watch", true, "reload climber.yaml and scripts when they change on disk")
	levelMode := flag.String("level-mode", "", "override the level strategy: score or timer")
	flag.Parse()

	prefabs.Dir = *prefabDir
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *levelMode != "" {
		spec.Level.Mode = *levelMode
		if err := spec.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	path := *savePath
	if path == "" {
		if path, err = save.DefaultPath(); err != nil {
			log.Printf("high score will not persist: %v", err)
		}
	}
	var store save.Store = &save.MemoryStore{}
	if path != "" {
		store = save.NewFileStore(path)
	}

	game, err := NewGame(spec, GameOptions{
		Debug: *debug,
		Store: store,
		Seed:  *seed,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(int(spec.Field.Width), int(spec.Field.Height))
	ebiten.SetWindowTitle(spec.Name)
	ebiten.SetTPS(spec.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
