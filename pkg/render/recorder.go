package render

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFill OpKind = iota
	OpLine
	OpPath
	OpCircle
)

// Op is one recorded drawing call. Lines are stored as two-point paths.
type Op struct {
	Kind   OpKind
	Points []Point
	Width  float64
	Radius float64
	Color  color.NRGBA
}

// Recorder is a Surface that records calls instead of drawing them.
// Used by tests and by the verification commands.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder creates a recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size implements Surface.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Fill implements Surface.
func (r *Recorder) Fill(clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: toNRGBA(clr)})
}

// StrokeLine implements Surface.
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpLine,
		Points: []Point{{X: x0, Y: y0}, {X: x1, Y: y1}},
		Width:  width,
		Color:  toNRGBA(clr),
	})
}

// StrokePath implements Surface.
func (r *Recorder) StrokePath(points []Point, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpPath,
		Points: append([]Point(nil), points...),
		Width:  width,
		Color:  toNRGBA(clr),
	})
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpCircle,
		Points: []Point{{X: cx, Y: cy}},
		Radius: radius,
		Color:  toNRGBA(clr),
	})
}

// Count returns how many ops of a kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops every recorded op.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}
