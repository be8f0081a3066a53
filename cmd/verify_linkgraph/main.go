// Command verify_linkgraph builds the link graph for a range of seeds and
// prints statistics, to check tuning changes in data/background.yaml.
//
// Usage:
//
//	go run ./cmd/verify_linkgraph -seeds 100 -width 1280 -height 720
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/entities"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/systems"
)

var (
	configPath = flag.String("config", config.DefaultConfigPath, "background config file")
	firstSeed  = flag.Uint64("seed", 1, "first seed")
	seeds      = flag.Int("seeds", 100, "number of seeds to build")
	width      = flag.Float64("width", 1280, "surface width")
	height     = flag.Float64("height", 720, "surface height")
	verbose    = flag.Bool("verbose", false, "print every seed")
)

// stats accumulates link graph figures over many seeds.
type stats struct {
	graphs    int
	links     int
	pipeline  int
	flows     int
	byPair    map[string]int
	maxLinks  int
	minLinks  int
	isolated  int
	entities  int
	violation []string
}

func newStats() *stats {
	return &stats{byPair: map[string]int{}, minLinks: -1}
}

func pairName(a, b components.GlyphKind) string {
	if a > b {
		a, b = b, a
	}
	return a.String() + "-" + b.String()
}

// add records one graph and checks it against the rules.
func (s *stats) add(seed uint64, em *ecs.EntityManager, rules systems.LinkRules, links []components.Link, flows []components.FlowToken) {
	s.graphs++
	s.links += len(links)
	s.flows += len(flows)
	s.maxLinks = max(s.maxLinks, len(links))
	if s.minLinks < 0 || len(links) < s.minLinks {
		s.minLinks = len(links)
	}

	degree := map[ecs.EntityID]int{}
	for _, link := range links {
		ga, _ := ecs.GetComponent[*components.GlyphComponent](em, link.A)
		gb, _ := ecs.GetComponent[*components.GlyphComponent](em, link.B)
		if _, ok := rules.Chance(ga.Kind, gb.Kind); !ok {
			s.violation = append(s.violation, fmt.Sprintf("seed %d: ineligible %s", seed, pairName(ga.Kind, gb.Kind)))
		}
		s.byPair[pairName(ga.Kind, gb.Kind)]++
		if link.Pipeline {
			s.pipeline++
		}
		degree[link.A]++
		degree[link.B]++
	}

	ids := ecs.GetEntitiesWith1[*components.GlyphComponent](em)
	s.entities += len(ids)
	for _, id := range ids {
		if degree[id] == 0 {
			s.isolated++
		}
	}
}

func (s *stats) print() {
	fmt.Printf("graphs:            %d\n", s.graphs)
	fmt.Printf("links per graph:   avg %.1f, min %d, max %d\n", float64(s.links)/float64(s.graphs), s.minLinks, s.maxLinks)
	fmt.Printf("pipeline links:    %.1f%%\n", percent(s.pipeline, s.links))
	fmt.Printf("flows per link:    %.2f\n", float64(s.flows)/float64(max(s.links, 1)))
	fmt.Printf("isolated entities: %.1f%%\n", percent(s.isolated, s.entities))

	pairs := make([]string, 0, len(s.byPair))
	for p := range s.byPair {
		pairs = append(pairs, p)
	}
	sort.Strings(pairs)
	fmt.Println("links by pair:")
	for _, p := range pairs {
		fmt.Printf("  %-16s %6d\n", p, s.byPair[p])
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func main() {
	flag.Parse()

	cfg, err := config.LoadBackgroundConfig(*configPath)
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
		cfg = config.DefaultBackgroundConfig()
	}
	rules, err := systems.NewLinkRules(cfg.Links.Rules)
	if err != nil {
		log.Fatalf("invalid link rules: %v", err)
	}

	fmt.Printf("=== Link graph: %d seeds from %d, %gx%g, %d entities ===\n",
		*seeds, *firstSeed, *width, *height, cfg.EntityCount)

	st := newStats()
	for i := 0; i < *seeds; i++ {
		seed := *firstSeed + uint64(i)
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

		em := ecs.NewEntityManager()
		if _, err := entities.SeedBioEntities(em, cfg, rng, *width, *height); err != nil {
			log.Fatalf("seed %d: %v", seed, err)
		}
		links, flows := systems.BuildLinkGraph(em, rules, cfg, rng)
		st.add(seed, em, rules, links, flows)

		if *verbose {
			fmt.Printf("seed %d: %d links, %d flows\n", seed, len(links), len(flows))
		}
	}

	st.print()

	if len(st.violation) > 0 {
		fmt.Println("FAIL:")
		for _, v := range st.violation {
			fmt.Println("  " + v)
		}
		os.Exit(1)
	}
	fmt.Println("OK: no ineligible links")
}
