package geom

import "fmt"

// Boundary selects how the classifier treats an edge crossing that lands
// exactly on a ball or on the centroid.
type Boundary int

const (
	// BoundaryExclusive uses strict comparisons: a crossing at an end point
	// does not count, so a ball sitting on an edge is classified as inside.
	BoundaryExclusive Boundary = iota

	// BoundaryInclusive counts crossings at the end points, so a ball sitting
	// on an edge stays in play.
	BoundaryInclusive
)

// String returns the config name of the convention.
func (b Boundary) String() string {
	switch b {
	case BoundaryExclusive:
		return "exclusive"
	case BoundaryInclusive:
		return "inclusive"
	default:
		return "unknown"
	}
}

// ParseBoundary converts a config name to a Boundary. Empty means exclusive.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "exclusive":
		return BoundaryExclusive, nil
	case "inclusive":
		return BoundaryInclusive, nil
	default:
		return BoundaryExclusive, fmt.Errorf("geom: unknown boundary convention %q", s)
	}
}

// Classifier decides which balls lie in a discarded triangle.
//
// For each ball it draws the line from the triangle's centroid to the ball and
// intersects it with the three edge lines. If any intersection falls between
// the centroid and the ball on both axes, the ball is beyond that edge and
// stays. Otherwise the ball is inside and must go. This is an axis-aligned
// approximation, not a barycentric test; thin triangles and balls near a
// vertex can be misjudged. An axis along which centroid and ball coincide is
// always satisfied, otherwise balls straight across from the centroid could
// never be found outside.
type Classifier struct {
	Boundary Boundary
}

// Classify returns the indices of balls inside tri, in ascending order.
func (c Classifier) Classify(tri Triangle, balls []Point) []int {
	var removed []int
	for i, ball := range balls {
		if c.Inside(tri, ball) {
			removed = append(removed, i)
		}
	}
	return removed
}

// Inside reports whether ball is classified as lying in tri.
func (c Classifier) Inside(tri Triangle, ball Point) bool {
	center := tri.Centroid()
	ray := NewLine(center, ball)
	for _, edge := range tri.Edges() {
		if c.crosses(ray, edge, center, ball) {
			return false
		}
	}
	return true
}

// crosses reports whether edge meets the centroid-ball line between the two.
func (c Classifier) crosses(ray, edge Line, center, ball Point) bool {
	p, ok := ray.Intersect(edge)
	if !ok {
		return false
	}
	return c.between(p.X, center.X, ball.X) && c.between(p.Y, center.Y, ball.Y)
}

// betweenBand is the share of a short span kept as the boundary band, so a
// span just above Tolerance still has an interior.
const betweenBand = 1e-3

func (c Classifier) between(v, a, b float64) bool {
	lo, hi := min(a, b), max(a, b)
	span := hi - lo
	if span < Tolerance {
		return true
	}
	band := min(Tolerance, span*betweenBand)
	if c.Boundary == BoundaryInclusive {
		return v >= lo-band && v <= hi+band
	}
	return v > lo+band && v < hi-band
}

// ClassifyBalls runs the default (exclusive) classifier.
func ClassifyBalls(tri Triangle, balls []Point) []int {
	return Classifier{}.Classify(tri, balls)
}
