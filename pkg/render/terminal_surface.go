package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TerminalSurface rasterises the canvas onto a tcell screen. Every terminal
// cell covers cellW x cellH canvas pixels and shows its colour as the cell
// background.
//
// Drawing only touches the in-memory cell buffer; Flush pushes it to the
// screen.
type TerminalSurface struct {
	screen       tcell.Screen
	cellW, cellH int
	cols, rows   int
	cells        []colorful.Color
}

// NewTerminalSurface creates a surface sized to the screen.
func NewTerminalSurface(screen tcell.Screen, cellW, cellH int) *TerminalSurface {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	s := &TerminalSurface{screen: screen, cellW: cellW, cellH: cellH}
	s.Resize()
	return s
}

// Resize re-reads the screen size and clears the cell buffer.
func (s *TerminalSurface) Resize() {
	s.cols, s.rows = s.screen.Size()
	if s.cols < 0 {
		s.cols = 0
	}
	if s.rows < 0 {
		s.rows = 0
	}
	s.cells = make([]colorful.Color, s.cols*s.rows)
}

// Size implements Surface.
func (s *TerminalSurface) Size() (int, int) {
	return s.cols * s.cellW, s.rows * s.cellH
}

// Fill implements Surface.
func (s *TerminalSurface) Fill(clr color.Color) {
	src, a := split(clr)
	for i := range s.cells {
		s.cells[i] = s.cells[i].BlendRgb(src, a)
	}
}

// StrokeLine implements Surface. The width is ignored: a line is always one
// cell wide.
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	src, a := split(clr)
	c0, r0 := s.cellOf(x0, y0)
	c1, r1 := s.cellOf(x1, y1)

	// Bresenham over cells
	dc := absInt(c1 - c0)
	dr := -absInt(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	e := dc + dr
	for {
		s.blend(c0, r0, src, a)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// StrokePath implements Surface.
func (s *TerminalSurface) StrokePath(points []Point, width float64, clr color.Color) {
	for i := 1; i < len(points); i++ {
		s.StrokeLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, width, clr)
	}
}

// FillCircle implements Surface. Cells whose centre lies inside the disc are
// painted; a disc smaller than a cell still paints the cell under its centre.
func (s *TerminalSurface) FillCircle(cx, cy, radius float64, clr color.Color) {
	src, a := split(clr)
	minC, minR := s.cellOf(cx-radius, cy-radius)
	maxC, maxR := s.cellOf(cx+radius, cy+radius)

	painted := false
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			px := (float64(c) + 0.5) * float64(s.cellW)
			py := (float64(r) + 0.5) * float64(s.cellH)
			if math.Hypot(px-cx, py-cy) <= radius {
				s.blend(c, r, src, a)
				painted = true
			}
		}
	}
	if !painted {
		c, r := s.cellOf(cx, cy)
		s.blend(c, r, src, a)
	}
}

// CellColor returns the buffered colour of a cell.
func (s *TerminalSurface) CellColor(col, row int) (colorful.Color, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return colorful.Color{}, false
	}
	return s.cells[row*s.cols+col], true
}

// Flush writes the cell buffer to the screen and shows it.
func (s *TerminalSurface) Flush() {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			cr, cg, cb := s.cells[r*s.cols+c].Clamped().RGB255()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
			s.screen.SetContent(c, r, ' ', nil, style)
		}
	}
	s.screen.Show()
}

func (s *TerminalSurface) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / float64(s.cellW))), int(math.Floor(y / float64(s.cellH)))
}

func (s *TerminalSurface) blend(col, row int, src colorful.Color, a float64) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	i := row*s.cols + col
	s.cells[i] = s.cells[i].BlendRgb(src, a)
}

// split converts any colour into an opaque colorful.Color and its alpha.
func split(clr color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}, float64(n.A) / 255
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
