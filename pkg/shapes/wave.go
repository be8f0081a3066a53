package shapes

import (
	"image/color"
	"math"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

// Wave draws a heartbeat trace whose stroke width pulses with the phase.
func Wave(s render.Surface, pose render.Pose, size float64, st components.WaveState, clr color.Color) {
	s.StrokePath(render.NewTransform(pose).ApplyAll(wavePoints(size)), WaveWidth(st.Phase), clr)
}

// WaveWidth is the stroke width of a wave glyph at a phase: 2 +/- 30%.
func WaveWidth(phase float64) float64 {
	return 2 * (math.Sin(phase)*0.3 + 1)
}

func wavePoints(size float64) []render.Point {
	w := size * 3
	h := size * 2
	return []render.Point{
		{X: -w, Y: 0},
		{X: -w / 2, Y: 0},
		{X: -w / 3, Y: -h},
		{X: 0, Y: 0},
		{X: w / 3, Y: h},
		{X: w / 2, Y: 0},
		{X: w, Y: 0},
	}
}
