package components

import "fmt"

// GlyphKind enumerates the decorative glyphs an entity can render.
type GlyphKind int

const (
	GlyphHelix   GlyphKind = iota // double helix strand
	GlyphRing                     // ring of atoms around a nucleus
	GlyphNetwork                  // 2-3-2 layered network
	GlyphCloud                    // three-lobed cloud
	GlyphWave                     // pulsing waveform
)

// AllGlyphKinds lists every glyph kind in declaration order.
var AllGlyphKinds = []GlyphKind{GlyphHelix, GlyphRing, GlyphNetwork, GlyphCloud, GlyphWave}

var glyphKindNames = map[GlyphKind]string{
	GlyphHelix:   "helix",
	GlyphRing:    "ring",
	GlyphNetwork: "network",
	GlyphCloud:   "cloud",
	GlyphWave:    "wave",
}

// String returns the name used in configuration files.
func (k GlyphKind) String() string {
	if name, ok := glyphKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("GlyphKind(%d)", int(k))
}

// ParseGlyphKind maps a configuration name back to its GlyphKind.
func ParseGlyphKind(name string) (GlyphKind, error) {
	for kind, n := range glyphKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown glyph kind %q", name)
}

// Domain groups glyph kinds into the stages of the illustrative data
// pipeline: signal source -> biological -> processing -> infrastructure.
type Domain int

const (
	DomainSignal Domain = iota
	DomainBiological
	DomainProcessing
	DomainInfrastructure
)

// Domain returns the pipeline stage a glyph kind belongs to.
func (k GlyphKind) Domain() Domain {
	switch k {
	case GlyphWave:
		return DomainSignal
	case GlyphHelix, GlyphRing:
		return DomainBiological
	case GlyphNetwork:
		return DomainProcessing
	default:
		return DomainInfrastructure
	}
}
