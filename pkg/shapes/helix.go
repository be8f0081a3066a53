package shapes

import (
	"image/color"
	"math"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

const (
	helixSamples     = 20
	helixTurns       = 3 * math.Pi
	helixRungEvery   = 4
	helixStrandWidth = 1.5
	helixRungWidth   = 1.0
	helixCurveSteps  = 4
)

// Helix draws two phase-shifted sinusoidal strands joined by periodic rungs.
// The strand phase follows the pose rotation plus the helix twist.
func Helix(s render.Surface, pose render.Pose, st components.HelixState, clr color.Color) {
	a, b := helixSamplePoints(st, pose.Rotation+st.Twist)
	tr := render.NewTransform(pose)

	s.StrokePath(tr.ApplyAll(smoothStrand(a)), helixStrandWidth, clr)
	s.StrokePath(tr.ApplyAll(smoothStrand(b)), helixStrandWidth, clr)

	for i := 0; i < len(a); i += helixRungEvery {
		p, q := tr.Apply(a[i].X, a[i].Y), tr.Apply(b[i].X, b[i].Y)
		s.StrokeLine(p.X, p.Y, q.X, q.Y, helixRungWidth, clr)
	}
}

// helixSamplePoints returns the raw samples of both strands in local space.
func helixSamplePoints(st components.HelixState, twist float64) (a, b []render.Point) {
	a = make([]render.Point, helixSamples)
	b = make([]render.Point, helixSamples)
	height := float64(st.Segments) * 5
	for i := 0; i < helixSamples; i++ {
		t := float64(i) / float64(helixSamples-1)
		y := (t - 0.5) * height
		angle := twist + t*helixTurns
		a[i] = render.Point{X: math.Cos(angle) * st.Width / 2, Y: y}
		b[i] = render.Point{X: math.Cos(angle+math.Pi) * st.Width / 2, Y: y}
	}
	return a, b
}

// smoothStrand passes a quadratic curve through the samples, using each
// sample as the control point and the midpoint to the next as the end.
func smoothStrand(samples []render.Point) []render.Point {
	if len(samples) < 3 {
		return samples
	}
	out := []render.Point{samples[0]}
	cur := samples[0]
	for i := 1; i < len(samples)-1; i++ {
		mid := render.Point{
			X: (samples[i].X + samples[i+1].X) / 2,
			Y: (samples[i].Y + samples[i+1].Y) / 2,
		}
		out = quadTo(out, cur, samples[i], mid, helixCurveSteps)
		cur = mid
	}
	return out
}
