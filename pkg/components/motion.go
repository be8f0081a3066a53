package components

// PositionComponent is the entity position in canvas space.
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent is the per-tick displacement of an entity.
type VelocityComponent struct {
	VX, VY float64
}

// RotationComponent holds the glyph orientation in radians and its per-tick
// angular speed.
type RotationComponent struct {
	Angle float64
	Speed float64
}
