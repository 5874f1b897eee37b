// Command sim plays climber sessions headlessly with a scripted bot and
// prints how they ended. It is handy for tuning climber.yaml.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/prefabs"
	"github.com/milk9111/climber/session"
)

func main() {
	runs := flag.Int("n", 20, "number of sessions to play")
	seed := flag.Uint64("seed", 1, "base seed; session i uses seed+i")
	botName := flag.String("bot", "greedy", "bot to play with: idle, random or greedy")
	maxTicks := flag.Int("max-ticks", 100000, "abandon a session after this many ticks")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for climber.yaml before the embedded copy")
	verbose := flag.Bool("v", false, "print every session")
	flag.Parse()

	prefabs.Dir = *prefabDir
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}

	var results []result
	for i := 0; i < *runs; i++ {
		res, err := play(spec, *botName, *seed+uint64(i), *maxTicks)
		if err != nil {
			log.Fatal(err)
		}
		if *verbose {
			fmt.Printf("session %3d: %-9s ticks=%-6d score=%-5d level=%-3d spawned=%-4d skipped=%d\n",
				i, res.reason, res.ticks, res.score, res.level, res.spawned, res.skipped)
		}
		results = append(results, res)
	}

	summarize(os.Stdout, results)
}

type result struct {
	reason  string
	ticks   int
	score   int
	level   int
	spawned int
	skipped int
}

func play(spec *prefabs.GameSpec, botName string, seed uint64, maxTicks int) (result, error) {
	b, err := newBot(botName, seed)
	if err != nil {
		return result{}, err
	}
	s, err := session.New(spec, session.WithSeed(seed), session.WithKeys(b))
	if err != nil {
		return result{}, err
	}
	b.attach(s.World())

	s.Start()
	for s.State() == component.SessionRunning && s.Ticks() < maxTicks {
		s.Tick()
	}

	res := result{reason: "abandoned", ticks: s.Ticks(), score: s.Score(), level: s.Level()}
	if end, ok := s.Result(); ok {
		res.reason = end.Reason.String()
	}
	res.spawned, res.skipped = s.SpawnStats()
	return res, nil
}

func summarize(out io.Writer, results []result) {
	if len(results) == 0 {
		return
	}
	reasons := map[string]int{}
	totalTicks, totalScore, best := 0, 0, 0
	for _, r := range results {
		reasons[r.reason]++
		totalTicks += r.ticks
		totalScore += r.score
		if r.score > best {
			best = r.score
		}
	}

	n := float64(len(results))
	fmt.Fprintf(out, "sessions: %d  mean ticks: %.1f  mean score: %.1f  best score: %d\n", len(results), float64(totalTicks)/n, float64(totalScore)/n, best)

	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-10s %d\n", name, reasons[name])
	}
}

func newBot(name string, seed uint64) (*bot, error) {
	switch name {
	case "idle", "random", "greedy":
		return &bot{mode: name, rng: rand.New(rand.NewPCG(seed, ^seed))}, nil
	}
	return nil, fmt.Errorf("unknown bot %q", name)
}
