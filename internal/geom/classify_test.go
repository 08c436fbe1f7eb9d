package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cutTriangle is what the scenario cut toward (115, 157.5) throws away.
var cutTriangle = Triangle{A: Pt(50, 150), B: Pt(30, 175), C: Pt(115, 157.5)}

func TestClassifyBalls(t *testing.T) {
	g := cutTriangle.Centroid()
	balls := []Point{
		g,
		Pt(1000, 1000),
		Pt(1000, g.Y),
		Pt(g.X, -500),
		Pt(60, 158),
		Pt(100, 140),
	}

	removed := ClassifyBalls(cutTriangle, balls)
	assert.Equal(t, []int{0, 4}, removed)
}

func TestClassifyBallsNearlyInLine(t *testing.T) {
	g := cutTriangle.Centroid()

	for _, offset := range []float64{1.5e-6, 2.5e-6, 4e-6} {
		level := Pt(200, g.Y+offset)
		plumb := Pt(g.X+offset, 100)
		require.False(t, cutTriangle.Contains(level))
		require.False(t, cutTriangle.Contains(plumb))

		for _, c := range []Classifier{{Boundary: BoundaryExclusive}, {Boundary: BoundaryInclusive}} {
			assert.Empty(t, c.Classify(cutTriangle, []Point{level, plumb}), "offset %g boundary %s", offset, c.Boundary)
		}
	}
}

func TestClassifyNothingInside(t *testing.T) {
	removed := ClassifyBalls(cutTriangle, []Point{Pt(200, 20), Pt(0, 0)})
	assert.Empty(t, removed)

	assert.Empty(t, ClassifyBalls(cutTriangle, nil))
}

func TestClassifyBoundaryConventions(t *testing.T) {
	exclusive := Classifier{Boundary: BoundaryExclusive}
	inclusive := Classifier{Boundary: BoundaryInclusive}

	tests := []struct {
		name          string
		ball          Point
		wantExclusive bool
		wantInclusive bool
	}{
		{"ball on the anchor", cutTriangle.A, true, false},
		{"ball on the edge opposite the anchor", cutTriangle.B.Lerp(cutTriangle.C, 0.5), true, false},
		{"ball at the centroid", cutTriangle.Centroid(), true, true},
		{"ball well outside", Pt(150, 100), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantExclusive, exclusive.Inside(cutTriangle, tc.ball), "exclusive")
			assert.Equal(t, tc.wantInclusive, inclusive.Inside(cutTriangle, tc.ball), "inclusive")
		})
	}
}

// Away from the edges and vertices the classifier agrees with an exact
// point-in-triangle test.
func TestClassifyAgreesWithContains(t *testing.T) {
	edges := cutTriangle.Edges()
	nearEdge := func(p Point) bool {
		for _, e := range edges {
			if e.Distance(p) < 0.5 {
				return true
			}
		}
		return false
	}

	g := cutTriangle.Centroid()
	checked := 0
	for x := 10.0; x <= 140; x += 2.5 {
		for y := 130.0; y <= 190; y += 2.5 {
			p := Pt(x, y)
			if nearEdge(p) || math.Abs(p.X-g.X) < 0.01 || math.Abs(p.Y-g.Y) < 0.01 {
				continue
			}
			checked++
			assert.Equal(t, cutTriangle.Contains(p), Classifier{}.Inside(cutTriangle, p), "ball %s", p)
		}
	}
	require.Greater(t, checked, 100)
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in      string
		want    Boundary
		wantErr bool
	}{
		{"", BoundaryExclusive, false},
		{"exclusive", BoundaryExclusive, false},
		{"inclusive", BoundaryInclusive, false},
		{"sometimes", BoundaryExclusive, true},
	}
	for _, tc := range tests {
		got, err := ParseBoundary(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		if tc.in != "" {
			assert.Equal(t, tc.in, got.String())
		}
	}
	assert.Equal(t, "unknown", Boundary(7).String())
}
