package systems

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/config"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/ecs"
)

type kindPair struct {
	a, b components.GlyphKind
}

func makeKindPair(a, b components.GlyphKind) kindPair {
	if a > b {
		a, b = b, a
	}
	return kindPair{a: a, b: b}
}

// LinkRules is the glyph-kind compatibility table. Pairs are unordered; a
// pair missing from the table never connects.
type LinkRules struct {
	chances map[kindPair]float64
}

// NewLinkRules builds the table from configuration entries.
//
// When several entries name the same pair the lowest chance wins, so a
// later entry can turn an always-connected pair into a chance pair but
// never the reverse.
func NewLinkRules(entries []config.LinkRuleConfig) (LinkRules, error) {
	rules := LinkRules{chances: make(map[kindPair]float64, len(entries))}
	for i, e := range entries {
		a, err := components.ParseGlyphKind(e.A)
		if err != nil {
			return LinkRules{}, fmt.Errorf("link rule %d: %w", i, err)
		}
		b, err := components.ParseGlyphKind(e.B)
		if err != nil {
			return LinkRules{}, fmt.Errorf("link rule %d: %w", i, err)
		}
		key := makeKindPair(a, b)
		if prev, ok := rules.chances[key]; ok && prev <= e.Chance {
			continue
		}
		rules.chances[key] = e.Chance
	}
	return rules, nil
}

// Chance returns the connection probability of a pair and whether the pair
// is eligible at all.
func (r LinkRules) Chance(a, b components.GlyphKind) (float64, bool) {
	c, ok := r.chances[makeKindPair(a, b)]
	return c, ok
}

// BuildLinkGraph connects eligible entity pairs closer than
// cfg.Links.MaxDistance and seeds flow tokens on some of the links.
//
// It runs once, after seeding. Pairs are visited in ascending entity-ID
// order and random numbers are drawn only for chance pairs and flow tokens,
// so the result depends solely on the entity set and the rng state. Entities
// are not modified.
//
// Returns:
//   - []components.Link: the links, each pair at most once
//   - []components.FlowToken: at most one token per link, referencing it by index
func BuildLinkGraph(em *ecs.EntityManager, rules LinkRules, cfg *config.BackgroundConfig, rng *rand.Rand) ([]components.Link, []components.FlowToken) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.GlyphComponent](em)

	var links []components.Link
	var flows []components.FlowToken

	for i := 0; i < len(ids); i++ {
		posA, _ := ecs.GetComponent[*components.PositionComponent](em, ids[i])
		glyphA, _ := ecs.GetComponent[*components.GlyphComponent](em, ids[i])

		for j := i + 1; j < len(ids); j++ {
			posB, _ := ecs.GetComponent[*components.PositionComponent](em, ids[j])
			glyphB, _ := ecs.GetComponent[*components.GlyphComponent](em, ids[j])

			if math.Hypot(posB.X-posA.X, posB.Y-posA.Y) >= cfg.Links.MaxDistance {
				continue
			}
			chance, ok := rules.Chance(glyphA.Kind, glyphB.Kind)
			if !ok {
				continue
			}
			if chance < 1 && rng.Float64() >= chance {
				continue
			}

			link := components.Link{
				A:        ids[i],
				B:        ids[j],
				Pipeline: glyphA.Kind.Domain() != glyphB.Kind.Domain(),
			}
			links = append(links, link)

			flowChance := cfg.Links.FlowChance
			if link.Pipeline {
				flowChance = cfg.Links.PipelineFlowChance
			}
			if rng.Float64() < flowChance {
				flows = append(flows, components.FlowToken{
					Link:     len(links) - 1,
					Progress: rng.Float64(),
					Speed:    cfg.Flow.MinSpeed + rng.Float64()*cfg.Flow.SpeedJitter,
				})
			}
		}
	}

	return links, flows
}
