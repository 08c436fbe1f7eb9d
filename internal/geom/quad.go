package geom

import (
	"errors"
	"fmt"
	"math"
)

// DefaultNudge is how far a corner is moved when two adjacent corners share an
// x coordinate.
const DefaultNudge = 1.0

// ErrNotQuadrants is returned by Quad.Validate when the corners do not occupy
// four distinct quadrants around the area's center.
var ErrNotQuadrants = errors.New("geom: corners must lie in four distinct quadrants")

// Quad is the play area: four corners visited in order, edge i joining corner i
// to corner (i+1) mod 4. Corners are addressed by index, never by value, since
// two corners may coincide after enough cuts.
type Quad [4]Point

// mustCorner panics if i cannot address a corner. Reaching here with a bad
// index means a caller broke its contract, not that the player did something.
func mustCorner(i int) {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("geom: corner index %d out of range [0, 3]", i))
	}
}

// Corner returns corner i, wrapping the index cyclically.
func (q Quad) Corner(i int) Point {
	return q[CircularIndex(i, 4)]
}

// Edge returns the line from corner i to corner i+1.
func (q Quad) Edge(i int) Line {
	return NewLine(q.Corner(i), q.Corner(i+1))
}

// Center returns the average of the four corners.
func (q Quad) Center() Point {
	var c Point
	for _, p := range q {
		c = c.Add(p)
	}
	return c.Scale(0.25)
}

// SignedArea returns the shoelace area; the sign gives the winding.
func (q Quad) SignedArea() float64 {
	var sum float64
	for i := range q {
		sum += q[i].Cross(q.Corner(i + 1))
	}
	return sum / 2
}

// Area returns the absolute area enclosed by the corners.
func (q Quad) Area() float64 {
	return math.Abs(q.SignedArea())
}

// Contains reports whether p lies inside the area or on its boundary.
// The area is assumed convex, which the quadrant rule approximates.
func (q Quad) Contains(p Point) bool {
	winding := q.SignedArea()
	if Equal(winding, 0) {
		return false
	}
	for i := range q {
		side := q.Edge(i).Side(p)
		if winding > 0 && side < -Tolerance {
			return false
		}
		if winding < 0 && side > Tolerance {
			return false
		}
	}
	return true
}

// Replace returns a copy of q with corner i set to p.
func (q Quad) Replace(i int, p Point) Quad {
	mustCorner(i)
	q[i] = p
	return q
}

// Normalize returns a copy of q in which no two adjacent corners share an x
// coordinate exactly. The offending corner is moved nudge units toward the
// center; a few passes settle any knock-on collisions.
func (q Quad) Normalize(nudge float64) Quad {
	for range 4 {
		changed := false
		center := q.Center()
		for i := range q {
			j := (i + 1) % 4
			if q[i].X != q[j].X {
				continue
			}
			if q[i].X < center.X {
				q[i].X += nudge
			} else {
				q[i].X -= nudge
			}
			changed = true
		}
		if !changed {
			break
		}
	}
	return q
}

// Validate checks that each corner sits in its own quadrant around the center,
// which keeps the area roughly box shaped and non self-intersecting.
func (q Quad) Validate() error {
	center := q.Center()
	seen := make(map[int]bool, 4)
	for i, p := range q {
		quadrant := 0
		if p.X >= center.X {
			quadrant |= 1
		}
		if p.Y >= center.Y {
			quadrant |= 2
		}
		if seen[quadrant] {
			return fmt.Errorf("%w: corner %d %s shares a quadrant", ErrNotQuadrants, i, p)
		}
		seen[quadrant] = true
	}
	return nil
}

// Extent is an axis-aligned box with Min <= Max on both axes.
type Extent struct {
	Min, Max Point
}

// NewExtent builds an extent from two opposite corners in any order.
func NewExtent(a, b Point) Extent {
	return Extent{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns the horizontal size.
func (e Extent) Width() float64 {
	return e.Max.X - e.Min.X
}

// Height returns the vertical size.
func (e Extent) Height() float64 {
	return e.Max.Y - e.Min.Y
}

// At maps fractions u, v in [0, 1) to a point inside the extent.
func (e Extent) At(u, v float64) Point {
	return Point{X: e.Min.X + e.Width()*u, Y: e.Min.Y + e.Height()*v}
}

// Bounds returns the smallest extent holding every corner.
func (q Quad) Bounds() Extent {
	e := Extent{Min: q[0], Max: q[0]}
	for _, p := range q[1:] {
		e.Min.X = math.Min(e.Min.X, p.X)
		e.Min.Y = math.Min(e.Min.Y, p.Y)
		e.Max.X = math.Max(e.Max.X, p.X)
		e.Max.Y = math.Max(e.Max.Y, p.Y)
	}
	return e
}

// SpawnExtent returns the inner box used to place new balls. Corners 0 and 1
// bound it on the left, 2 and 3 on the right, 0 and 3 on top and 1 and 2 on
// the bottom; for a quadrant-shaped area the box lies inside the area.
func (q Quad) SpawnExtent() Extent {
	left := math.Max(q[0].X, q[1].X)
	right := math.Min(q[2].X, q[3].X)
	top := math.Max(q[0].Y, q[3].Y)
	bottom := math.Min(q[1].Y, q[2].Y)
	return NewExtent(Point{X: left, Y: top}, Point{X: right, Y: bottom})
}

// Triangle is three points; a cut discards one.
type Triangle struct {
	A, B, C Point
}

// Centroid returns the average of the three vertices.
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Edges returns the lines A-B, B-C and C-A.
func (t Triangle) Edges() [3]Line {
	return [3]Line{NewLine(t.A, t.B), NewLine(t.B, t.C), NewLine(t.C, t.A)}
}

// Area returns the absolute area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2
}

// Contains is an exact point-in-triangle test by edge signs, boundary
// included. Degenerate triangles contain nothing.
func (t Triangle) Contains(p Point) bool {
	if Equal(t.Area(), 0) {
		return false
	}
	var pos, neg bool
	for _, e := range t.Edges() {
		s := e.Side(p)
		if s > Tolerance {
			pos = true
		}
		if s < -Tolerance {
			neg = true
		}
	}
	return !(pos && neg)
}
