// Package geom implements the geometry behind a slash: lines through two points,
// the four-cornered play area, cut validation and classification of the region a
// cut throws away. Everything in this package is pure. No function mutates its
// arguments, and nothing depends on the terminal or the game loop.
package geom

import (
	"fmt"
	"math"
)

// Tolerance is the distance below which two coordinates are considered equal.
// Play area coordinates live in roughly [0, 250] x [0, 200].
const Tolerance = 1e-6

// Point is a position in area coordinates (x grows right, y grows down).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of p and o treated as vectors.
func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y
}

// Cross returns the z component of the cross product of p and o.
// Positive when o is counterclockwise from p in a y-up frame.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

// Len returns the vector length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Normalize returns p scaled to unit length, or the zero vector if p is zero.
func (p Point) Normalize() Point {
	l := p.Len()
	if l < Tolerance {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Lerp returns the point at fraction t of the way from p to o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Near reports whether p and o coincide within Tolerance on both axes.
func (p Point) Near(o Point) bool {
	return Equal(p.X, o.X) && Equal(p.Y, o.Y)
}

// String formats the point as "(x, y)" with two decimals.
func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Equal compares two coordinates with Tolerance.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// CircularIndex maps any integer onto [0, n), wrapping negatives.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
