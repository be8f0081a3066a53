package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// BackgroundConfig holds every tunable of the animated background.
//
// The three historical versions of the effect disagree on counts, distances
// and opacities, so none of these values is contractual; the defaults
// reproduce the latest, most subdued version.
//
// Config file location: data/background.yaml
type BackgroundConfig struct {
	// EntityCount is the number of entities seeded at mount time.
	EntityCount int `yaml:"entityCount"`

	// KindTable is the weighted draw table for glyph kinds: a kind listed
	// twice is twice as likely.
	KindTable []string `yaml:"kindTable"`

	Entity  EntityConfig  `yaml:"entity"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Cluster ClusterConfig `yaml:"cluster"`
	Pointer PointerConfig `yaml:"pointer"`
	Links   LinksConfig   `yaml:"links"`
	Flow    FlowConfig    `yaml:"flow"`

	// Palettes maps a theme name ("light", "dark") to its colours.
	Palettes map[string]PaletteConfig `yaml:"palettes"`
}

// EntityConfig controls the randomised seeding of entities.
type EntityConfig struct {
	MinSize       float64 `yaml:"minSize"`
	MaxSize       float64 `yaml:"maxSize"`
	InitialSpeed  float64 `yaml:"initialSpeed"`  // each velocity axis is drawn from ±InitialSpeed/2
	RotationSpeed float64 `yaml:"rotationSpeed"` // rotation speed is drawn from ±RotationSpeed/2
	Clusters      int     `yaml:"clusters"`
}

// GlyphConfig holds glyph-specific parameters.
type GlyphConfig struct {
	HelixSegments int     `yaml:"helixSegments"`
	HelixWidth    float64 `yaml:"helixWidth"`
	RingAtoms     int     `yaml:"ringAtoms"`
	WaveBeatSpeed float64 `yaml:"waveBeatSpeed"`
}

// ClusterConfig controls the stochastic flocking nudge.
type ClusterConfig struct {
	Chance      float64 `yaml:"chance"` // per-entity, per-tick probability of a flocking pass
	InnerRadius float64 `yaml:"innerRadius"`
	OuterRadius float64 `yaml:"outerRadius"`
	Attraction  float64 `yaml:"attraction"`
	Repulsion   float64 `yaml:"repulsion"`
	MaxSpeed    float64 `yaml:"maxSpeed"`
}

// PointerConfig controls pointer highlighting.
type PointerConfig struct {
	Radius float64 `yaml:"radius"`
}

// LinksConfig controls link graph construction and link rendering.
type LinksConfig struct {
	MaxDistance        float64          `yaml:"maxDistance"`
	Alpha              float64          `yaml:"alpha"` // link alpha at zero distance
	Width              float64          `yaml:"width"`
	PipelineFlowChance float64          `yaml:"pipelineFlowChance"`
	FlowChance         float64          `yaml:"flowChance"`
	Rules              []LinkRuleConfig `yaml:"rules"`
}

// LinkRuleConfig is one entry of the type-compatibility table.
//
// Chance 1 means the pair always connects; lower values connect with that
// independent probability.
type LinkRuleConfig struct {
	A      string  `yaml:"a"`
	B      string  `yaml:"b"`
	Chance float64 `yaml:"chance"`
}

// FlowConfig controls flow tokens.
type FlowConfig struct {
	MinSpeed    float64 `yaml:"minSpeed"`
	SpeedJitter float64 `yaml:"speedJitter"`
	Radius      float64 `yaml:"radius"`
}

// ColorConfig is a hex colour plus an alpha in [0, 1].
type ColorConfig struct {
	Hex   string  `yaml:"hex"`
	Alpha float64 `yaml:"alpha"`
}

// PaletteConfig is the raw colour set of one theme.
type PaletteConfig struct {
	Base   ColorConfig `yaml:"base"`
	Active ColorConfig `yaml:"active"`
	Flow   ColorConfig `yaml:"flow"`
	Trail  ColorConfig `yaml:"trail"`
}

// Palette is a resolved PaletteConfig.
// Colours are non-premultiplied so the configured alpha is kept verbatim.
type Palette struct {
	Base   color.NRGBA
	Active color.NRGBA
	Flow   color.NRGBA
	Trail  color.NRGBA
}

// DefaultBackgroundConfig returns the built-in tunables.
func DefaultBackgroundConfig() *BackgroundConfig {
	return &BackgroundConfig{
		EntityCount: 30,
		KindTable:   []string{"helix", "helix", "ring", "network", "cloud", "cloud", "wave", "wave"},
		Entity: EntityConfig{
			MinSize:       5,
			MaxSize:       8,
			InitialSpeed:  0.3,
			RotationSpeed: 0.015,
			Clusters:      3,
		},
		Glyphs: GlyphConfig{
			HelixSegments: 6,
			HelixWidth:    16,
			RingAtoms:     5,
			WaveBeatSpeed: 0.05,
		},
		Cluster: ClusterConfig{
			Chance:      0.02,
			InnerRadius: 50,
			OuterRadius: 200,
			Attraction:  0.002,
			Repulsion:   0.001,
			MaxSpeed:    0.5,
		},
		Pointer: PointerConfig{Radius: 80},
		Links: LinksConfig{
			MaxDistance:        220,
			Alpha:              0.1,
			Width:              1,
			PipelineFlowChance: 0.8,
			FlowChance:         0.5,
			Rules:              DefaultLinkRules(),
		},
		Flow: FlowConfig{
			MinSpeed:    0.003,
			SpeedJitter: 0.002,
			Radius:      2,
		},
		Palettes: map[string]PaletteConfig{
			"light": {
				Base:   ColorConfig{Hex: "#506478", Alpha: 0.2},
				Active: ColorConfig{Hex: "#3c5064", Alpha: 0.4},
				Flow:   ColorConfig{Hex: "#3c5064", Alpha: 0.3},
				Trail:  ColorConfig{Hex: "#ffffff", Alpha: 0.15},
			},
			"dark": {
				Base:   ColorConfig{Hex: "#8ca0b4", Alpha: 0.2},
				Active: ColorConfig{Hex: "#b4c8dc", Alpha: 0.4},
				Flow:   ColorConfig{Hex: "#b4c8dc", Alpha: 0.3},
				Trail:  ColorConfig{Hex: "#0a0a0a", Alpha: 0.15},
			},
		},
	}
}

// DefaultLinkRules returns the type-compatibility table.
//
// Pipeline stages (wave -> helix/ring -> network -> cloud) always connect;
// pairs inside one stage connect by chance; any pair not listed never does.
func DefaultLinkRules() []LinkRuleConfig {
	return []LinkRuleConfig{
		{A: "wave", B: "helix", Chance: 1},
		{A: "wave", B: "ring", Chance: 1},
		{A: "helix", B: "network", Chance: 1},
		{A: "ring", B: "network", Chance: 1},
		{A: "network", B: "cloud", Chance: 1},
		{A: "helix", B: "ring", Chance: 0.7},
		{A: "wave", B: "wave", Chance: 0.5},
		{A: "network", B: "network", Chance: 0.6},
		{A: "cloud", B: "cloud", Chance: 0.7},
	}
}

// LoadBackgroundConfig loads a YAML background config from disk.
//
// Fields missing from the file keep their default values.
//
// Parameters:
//   - path: config file path (e.g. "data/background.yaml")
//
// Returns:
//   - *BackgroundConfig: the validated config
//   - error: read, parse or validation failure
func LoadBackgroundConfig(path string) (*BackgroundConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read background config: %w", err)
	}
	return ParseBackgroundConfig(data)
}

// ParseBackgroundConfig decodes YAML on top of the defaults and validates
// the result. Lists and palette entries present in the YAML replace the
// defaults wholesale.
func ParseBackgroundConfig(data []byte) (*BackgroundConfig, error) {
	config := DefaultBackgroundConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse background config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid background config: %w", err)
	}

	return config, nil
}

// Validate checks that the values are usable.
func (c *BackgroundConfig) Validate() error {
	if c.EntityCount < 0 {
		return fmt.Errorf("entityCount must be >= 0, got %d", c.EntityCount)
	}
	if c.EntityCount > 0 && len(c.KindTable) == 0 {
		return fmt.Errorf("kindTable must not be empty")
	}
	for _, name := range c.KindTable {
		if _, err := components.ParseGlyphKind(name); err != nil {
			return fmt.Errorf("kindTable: %w", err)
		}
	}

	if c.Entity.MinSize <= 0 || c.Entity.MinSize > c.Entity.MaxSize {
		return fmt.Errorf("entity size range invalid: min(%.1f) max(%.1f)",
			c.Entity.MinSize, c.Entity.MaxSize)
	}
	if c.Entity.Clusters < 1 {
		return fmt.Errorf("entity clusters must be >= 1, got %d", c.Entity.Clusters)
	}

	if c.Glyphs.HelixSegments < 1 || c.Glyphs.RingAtoms < 3 {
		return fmt.Errorf("glyphs: helixSegments must be >= 1 and ringAtoms >= 3")
	}

	if c.Cluster.Chance < 0 || c.Cluster.Chance > 1 {
		return fmt.Errorf("cluster chance must be in [0, 1], got %.3f", c.Cluster.Chance)
	}
	if c.Cluster.InnerRadius > c.Cluster.OuterRadius {
		return fmt.Errorf("cluster radius invalid: inner(%.1f) > outer(%.1f)",
			c.Cluster.InnerRadius, c.Cluster.OuterRadius)
	}
	if c.Cluster.MaxSpeed <= 0 {
		return fmt.Errorf("cluster maxSpeed must be > 0, got %.3f", c.Cluster.MaxSpeed)
	}
	// seeded velocities must already respect the cap
	if c.Entity.InitialSpeed/2*math.Sqrt2 > c.Cluster.MaxSpeed {
		return fmt.Errorf("entity initialSpeed %.3f can exceed cluster maxSpeed %.3f",
			c.Entity.InitialSpeed, c.Cluster.MaxSpeed)
	}

	if c.Links.MaxDistance <= 0 {
		return fmt.Errorf("links maxDistance must be > 0, got %.1f", c.Links.MaxDistance)
	}
	for _, p := range []float64{c.Links.PipelineFlowChance, c.Links.FlowChance, c.Links.Alpha} {
		if p < 0 || p > 1 {
			return fmt.Errorf("links probabilities and alpha must be in [0, 1], got %.3f", p)
		}
	}
	for i, rule := range c.Links.Rules {
		if _, err := components.ParseGlyphKind(rule.A); err != nil {
			return fmt.Errorf("links rule %d: %w", i, err)
		}
		if _, err := components.ParseGlyphKind(rule.B); err != nil {
			return fmt.Errorf("links rule %d: %w", i, err)
		}
		if rule.Chance <= 0 || rule.Chance > 1 {
			return fmt.Errorf("links rule %d (%s-%s): chance must be in (0, 1], got %.3f",
				i, rule.A, rule.B, rule.Chance)
		}
	}

	if c.Flow.MinSpeed <= 0 || c.Flow.SpeedJitter < 0 {
		return fmt.Errorf("flow speed invalid: min(%.4f) jitter(%.4f)", c.Flow.MinSpeed, c.Flow.SpeedJitter)
	}
	if c.Flow.MinSpeed+c.Flow.SpeedJitter >= 1 {
		return fmt.Errorf("flow speed must stay below 1 per tick")
	}

	for _, theme := range []string{"light", "dark"} {
		pc, ok := c.Palettes[theme]
		if !ok {
			return fmt.Errorf("palette %q missing", theme)
		}
		if _, err := pc.Resolve(); err != nil {
			return fmt.Errorf("palette %q: %w", theme, err)
		}
	}

	return nil
}

// Palette returns the resolved palette of a theme, falling back to "light"
// for unknown names. Colours that fail to parse resolve to transparent
// black; Validate rejects them up front.
func (c *BackgroundConfig) Palette(theme string) Palette {
	pc, ok := c.Palettes[theme]
	if !ok {
		pc = c.Palettes["light"]
	}
	p, _ := pc.Resolve()
	return p
}

// Resolve parses every colour of the palette.
func (pc PaletteConfig) Resolve() (Palette, error) {
	var p Palette
	var err error
	if p.Base, err = pc.Base.Resolve(); err != nil {
		return Palette{}, fmt.Errorf("base: %w", err)
	}
	if p.Active, err = pc.Active.Resolve(); err != nil {
		return Palette{}, fmt.Errorf("active: %w", err)
	}
	if p.Flow, err = pc.Flow.Resolve(); err != nil {
		return Palette{}, fmt.Errorf("flow: %w", err)
	}
	if p.Trail, err = pc.Trail.Resolve(); err != nil {
		return Palette{}, fmt.Errorf("trail: %w", err)
	}
	return p, nil
}

// Resolve parses the hex colour and applies the alpha.
func (cc ColorConfig) Resolve() (color.NRGBA, error) {
	if cc.Alpha < 0 || cc.Alpha > 1 {
		return color.NRGBA{}, fmt.Errorf("alpha must be in [0, 1], got %.3f", cc.Alpha)
	}
	c, err := colorful.Hex(cc.Hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad colour %q: %w", cc.Hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(cc.Alpha * 255))}, nil
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(math.Round(a * 255))
	return c
}
