package geom

import "math"

// Line is the infinite line through two points, directed from P to Q.
// The same value doubles as the segment P-Q where callers need one.
type Line struct {
	P, Q Point
}

// NewLine returns the line through p and q.
func NewLine(p, q Point) Line {
	return Line{P: p, Q: q}
}

// Dir returns the direction vector Q - P.
func (l Line) Dir() Point {
	return l.Q.Sub(l.P)
}

// Degenerate reports whether the two defining points coincide.
// A degenerate line has no direction and intersects nothing.
func (l Line) Degenerate() bool {
	return l.P.Near(l.Q)
}

// Vertical reports whether the line has no horizontal extent.
func (l Line) Vertical() bool {
	return Equal(l.P.X, l.Q.X)
}

// Horizontal reports whether the line has no vertical extent.
func (l Line) Horizontal() bool {
	return Equal(l.P.Y, l.Q.Y)
}

// YAt returns the y coordinate of the line at x.
// Vertical lines have no single answer and report false; use XAt instead.
func (l Line) YAt(x float64) (float64, bool) {
	if l.Vertical() {
		return 0, false
	}
	slope := (l.Q.Y - l.P.Y) / (l.Q.X - l.P.X)
	return l.P.Y + slope*(x-l.P.X), true
}

// XAt returns the x coordinate of the line at y.
// Horizontal lines report false; use YAt instead.
func (l Line) XAt(y float64) (float64, bool) {
	if l.Horizontal() {
		return 0, false
	}
	inverse := (l.Q.X - l.P.X) / (l.Q.Y - l.P.Y)
	return l.P.X + inverse*(y-l.P.Y), true
}

// coefficients returns a, b, c with a*x + b*y = c for every point on the line.
func (l Line) coefficients() (a, b, c float64) {
	a = l.Q.Y - l.P.Y
	b = l.P.X - l.Q.X
	c = a*l.P.X + b*l.P.Y
	return a, b, c
}

// Intersect returns the point where l and o cross.
// Parallel (including coincident) and degenerate lines report false and the
// zero Point; no point is ever made up for them.
func (l Line) Intersect(o Line) (Point, bool) {
	if l.Degenerate() || o.Degenerate() {
		return Point{}, false
	}

	a1, b1, c1 := l.coefficients()
	a2, b2, c2 := o.coefficients()

	// det is the cross product of the two directions; zero means equal slopes.
	det := a1*b2 - a2*b1
	if math.Abs(det) <= Tolerance*l.Dir().Len()*o.Dir().Len() {
		return Point{}, false
	}

	return Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// Side returns the signed distance of p from the line.
// The sign tells which half-plane p is in; zero means p is on the line.
// Degenerate lines return 0 for every point.
func (l Line) Side(p Point) float64 {
	d := l.Dir()
	n := d.Len()
	if n < Tolerance {
		return 0
	}
	return d.Cross(p.Sub(l.P)) / n
}

// Distance returns the unsigned distance from p to the line.
func (l Line) Distance(p Point) float64 {
	if l.Degenerate() {
		return p.Dist(l.P)
	}
	return math.Abs(l.Side(p))
}

// Param returns t such that the projection of p onto the line is P + t*(Q-P).
// t is 0 at P, 1 at Q, and negative behind P.
func (l Line) Param(p Point) float64 {
	d := l.Dir()
	n := d.Dot(d)
	if n < Tolerance*Tolerance {
		return 0
	}
	return p.Sub(l.P).Dot(d) / n
}

// Normal returns the unit normal of the line, rotated 90 degrees from Dir.
func (l Line) Normal() Point {
	d := l.Dir()
	return Point{X: -d.Y, Y: d.X}.Normalize()
}
