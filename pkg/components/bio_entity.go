package components

// Point is a 2D offset in glyph-local or canvas space.
type Point struct {
	X, Y float64
}

// HelixState is the sub-state of a helix glyph.
type HelixState struct {
	Segments int     // vertical extent, in units of 5px
	Width    float64 // strand separation
	Twist    float64 // phase offset added to the entity rotation
}

// RingState is the sub-state of a ring glyph: precomputed atom offsets.
type RingState struct {
	Atoms []Point
}

// NetworkLayer is one column of nodes in a network glyph.
type NetworkLayer struct {
	X     float64
	Nodes int
}

// NetworkState is the sub-state of a network glyph.
type NetworkState struct {
	Layers []NetworkLayer
}

// WaveState is the sub-state of a waveform glyph.
type WaveState struct {
	Phase float64 // beat phase in radians
	Speed float64 // phase advance per tick
}

// GlyphComponent describes what an entity draws.
//
// It is a tagged variant: Kind selects which of the sub-states is
// meaningful, the others stay zero.
type GlyphComponent struct {
	Kind    GlyphKind
	Size    float64
	Helix   HelixState
	Ring    RingState
	Network NetworkState
	Wave    WaveState
}

// ClusterComponent tags an entity with its flocking group.
type ClusterComponent struct {
	Tag int
}

// HighlightComponent marks an entity the pointer is hovering near.
// Presentational only: it changes the draw colour, never the physics.
type HighlightComponent struct {
	Active bool
}
