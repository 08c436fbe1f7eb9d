package slash

import (
	"math"

	"github.com/vovakirdan/tui-slash/internal/core"
	"github.com/vovakirdan/tui-slash/internal/geom"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// Viewport maps area units to screen cells. The whole playfield is stretched
// over the screen below the HUD.
type Viewport struct {
	Left, Top      int
	Cols, Rows     int
	Width, Height  float64 // playfield size in area units
	ScaleX, ScaleY float64 // cells per area unit
}

// NewViewport fits a width x height playfield into a screen.
func NewViewport(screenW, screenH int, width, height float64) Viewport {
	v := Viewport{
		Top:    hudRows,
		Cols:   max(screenW, 1),
		Rows:   max(screenH-hudRows, 1),
		Width:  width,
		Height: height,
	}
	if width > 0 {
		v.ScaleX = float64(v.Cols-1) / width
	}
	if height > 0 {
		v.ScaleY = float64(v.Rows-1) / height
	}
	return v
}

// ToScreen returns the cell nearest to p.
func (v Viewport) ToScreen(p geom.Point) (int, int) {
	x := v.Left + int(math.Round(p.X*v.ScaleX))
	y := v.Top + int(math.Round(p.Y*v.ScaleY))
	return x, y
}

// ToArea returns the area point at the center of cell (x, y), clamped to the
// playfield.
func (v Viewport) ToArea(x, y int) geom.Point {
	var p geom.Point
	if v.ScaleX > 0 {
		p.X = float64(x-v.Left) / v.ScaleX
	}
	if v.ScaleY > 0 {
		p.Y = float64(y-v.Top) / v.ScaleY
	}
	return geom.Pt(core.ClampF(p.X, 0, v.Width), core.ClampF(p.Y, 0, v.Height))
}

// Line draws the segment a-b.
func (v Viewport) Line(dst *core.Screen, a, b geom.Point, r rune, c core.Color) {
	x0, y0 := v.ToScreen(a)
	x1, y1 := v.ToScreen(b)
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

// Plot draws a single rune at p.
func (v Viewport) Plot(dst *core.Screen, p geom.Point, r rune, c core.Color) {
	x, y := v.ToScreen(p)
	dst.SetColored(x, y, r, c)
}
