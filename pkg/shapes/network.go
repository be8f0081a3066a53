package shapes

import (
	"image/color"

	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/components"
	"github.com/TechWhizGenius/TechWhizGenius.github.io/pkg/render"
)

const networkEdgeWidth = 0.8

// Network draws the layered node graph: every node of a layer is joined to
// every node of the next layer.
func Network(s render.Surface, pose render.Pose, size float64, st components.NetworkState, clr color.Color) {
	tr := render.NewTransform(pose)

	for i, layer := range st.Layers {
		for _, n := range networkNodes(layer, size) {
			p := tr.Apply(n.X, n.Y)
			s.FillCircle(p.X, p.Y, size*0.7, clr)

			if i == len(st.Layers)-1 {
				continue
			}
			for _, m := range networkNodes(st.Layers[i+1], size) {
				q := tr.Apply(m.X, m.Y)
				s.StrokeLine(p.X, p.Y, q.X, q.Y, networkEdgeWidth, clr)
			}
		}
	}
}

// networkNodes spreads the nodes of a layer evenly over a 4*size column
// centred on the glyph.
func networkNodes(layer components.NetworkLayer, size float64) []render.Point {
	spacing := size * 4 / float64(layer.Nodes+1)
	nodes := make([]render.Point, layer.Nodes)
	for i := range nodes {
		nodes[i] = render.Point{X: layer.X, Y: float64(i+1)*spacing - size*2}
	}
	return nodes
}

// DefaultNetworkLayers returns the 2-3-2 layout for a glyph of the given size.
func DefaultNetworkLayers(size float64) []components.NetworkLayer {
	return []components.NetworkLayer{
		{X: -size * 2, Nodes: 2},
		{X: 0, Nodes: 3},
		{X: size * 2, Nodes: 2},
	}
}
