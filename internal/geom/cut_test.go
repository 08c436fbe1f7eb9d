package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario is the classic starting area. It is not quadrant shaped: corners 0
// and 1 both sit low and left of the center.
var scenario = Quad{Pt(50, 150), Pt(30, 175), Pt(200, 140), Pt(220, 25)}

func ptr(x, y float64) *Point {
	p := Pt(x, y)
	return &p
}

func TestValidateCutScenario(t *testing.T) {
	t.Run("pointer on the far corner", func(t *testing.T) {
		r := ValidateCut(scenario, 0, ptr(220, 25))
		assert.False(t, r.Valid())
		assert.Equal(t, -1, r.Replaced)
	})

	t.Run("pointer on the bottom edge", func(t *testing.T) {
		r := ValidateCut(scenario, 0, ptr(115, 157.5))
		require.True(t, r.Valid())
		assert.Equal(t, 1, r.Replaced)
		assert.InDelta(t, 115.0, r.Exit.X, 1e-6)
		assert.InDelta(t, 157.5, r.Exit.Y, 1e-6)
	})

	t.Run("pointer outside the area but inside the wedge", func(t *testing.T) {
		r := ValidateCut(scenario, 0, ptr(300, 160))
		require.True(t, r.Valid())
		assert.Equal(t, 1, r.Replaced)

		edge := NewLine(scenario[1], scenario[2])
		assert.InDelta(t, 0.0, edge.Distance(*r.Exit), 1e-6)
		param := edge.Param(*r.Exit)
		assert.GreaterOrEqual(t, param, 0.0)
		assert.LessOrEqual(t, param, 1.0)
	})

	t.Run("pointer beyond the sideA boundary", func(t *testing.T) {
		assert.False(t, ValidateCut(scenario, 0, ptr(0, 0)).Valid())
	})

	t.Run("pointer beyond the sideB boundary", func(t *testing.T) {
		assert.False(t, ValidateCut(scenario, 0, ptr(250, 0)).Valid())
	})

	t.Run("pointer on the sideA boundary", func(t *testing.T) {
		r := ValidateCut(scenario, 0, ptr(40, 162.5))
		require.True(t, r.Valid())
		assert.Equal(t, 1, r.Replaced)
		assert.True(t, r.Exit.Near(scenario[1]))
	})

	t.Run("pointer on the anchor", func(t *testing.T) {
		assert.False(t, ValidateCut(scenario, 0, ptr(50, 150)).Valid())
	})
}

func TestValidateCutNoPointer(t *testing.T) {
	for anchor := range 4 {
		r := ValidateCut(scenario, anchor, nil)
		assert.False(t, r.Valid())
		assert.Nil(t, r.Exit)
		assert.Equal(t, -1, r.Replaced)
	}
}

func TestValidateCutBadAnchor(t *testing.T) {
	assert.Panics(t, func() { ValidateCut(scenario, 4, ptr(100, 100)) })
	assert.Panics(t, func() { ValidateCut(scenario, -1, nil) })
}

func TestValidateCutThroughOppositeCorner(t *testing.T) {
	square := Quad{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	// Both far edges meet the cut at the opposite corner.
	r := ValidateCut(square, 0, ptr(20, 20))
	assert.False(t, r.Valid())
	assert.Equal(t, -1, r.Replaced)

	for anchor := range 4 {
		opposite := box[(anchor+2)%4]
		r := ValidateCut(box, anchor, &opposite)
		assert.False(t, r.Valid(), "anchor %d toward %s", anchor, opposite)

		// A point on a far edge close to the corner is still a cut.
		near := opposite.Lerp(box[(anchor+1)%4], 0.05)
		assert.True(t, ValidateCut(box, anchor, &near).Valid(), "anchor %d toward %s", anchor, near)
	}

	normalized := Quad{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}.Normalize(DefaultNudge)
	assert.False(t, ValidateCut(normalized, 0, &normalized[2]).Valid())
}

func TestValidateCutEdgeMidpoints(t *testing.T) {
	for anchor := range 4 {
		ia, io, ib := (anchor+1)%4, (anchor+2)%4, (anchor+3)%4

		midA := box[io].Lerp(box[ia], 0.5)
		r := ValidateCut(box, anchor, &midA)
		require.True(t, r.Valid(), "anchor %d toward %s", anchor, midA)
		assert.Equal(t, ia, r.Replaced)
		assert.InDelta(t, midA.X, r.Exit.X, 1e-6)
		assert.InDelta(t, midA.Y, r.Exit.Y, 1e-6)

		midB := box[io].Lerp(box[ib], 0.5)
		r = ValidateCut(box, anchor, &midB)
		require.True(t, r.Valid(), "anchor %d toward %s", anchor, midB)
		assert.Equal(t, ib, r.Replaced)
		assert.InDelta(t, midB.X, r.Exit.X, 1e-6)
		assert.InDelta(t, midB.Y, r.Exit.Y, 1e-6)
	}
}

func TestValidateCutInteriorPointers(t *testing.T) {
	extent := box.SpawnExtent()
	fractions := []float64{0.2, 0.4, 0.6, 0.8}

	for anchor := range 4 {
		a := box[anchor]
		for _, u := range fractions {
			for _, v := range fractions {
				p := extent.At(u, v)
				require.True(t, box.Contains(p))

				r := ValidateCut(box, anchor, &p)
				require.True(t, r.Valid(), "anchor %d pointer %s", anchor, p)
				assert.NotEqual(t, anchor, r.Replaced)
				assert.NotEqual(t, (anchor+2)%4, r.Replaced)

				// The exit sits on the far edge that touches the replaced corner.
				edge := NewLine(box[(anchor+2)%4], box[r.Replaced])
				assert.InDelta(t, 0.0, edge.Distance(*r.Exit), 1e-6)
				param := edge.Param(*r.Exit)
				assert.GreaterOrEqual(t, param, -1e-9)
				assert.LessOrEqual(t, param, 1+1e-9)

				// The pointer is inside, so the cut leaves the area past it.
				assert.GreaterOrEqual(t, a.Dist(*r.Exit), a.Dist(p)-1e-9)

				// Cutting conserves area.
				kept := box.Replace(r.Replaced, *r.Exit)
				gone := Discarded(box, anchor, r)
				assert.InDelta(t, box.Area(), kept.Area()+gone.Area(), 1e-6)
			}
		}
	}
}

func TestApplyCut(t *testing.T) {
	r := ValidateCut(scenario, 0, ptr(115, 157.5))
	require.True(t, r.Valid())

	next := ApplyCut(scenario, r.Replaced, *r.Exit)
	assert.Equal(t, scenario[0], next[0])
	assert.InDelta(t, 115.0, next[1].X, 1e-6)
	assert.InDelta(t, 157.5, next[1].Y, 1e-6)
	assert.Equal(t, scenario[2], next[2])
	assert.Equal(t, scenario[3], next[3])

	assert.Equal(t, Pt(30, 175), scenario[1], "ApplyCut must not modify its input")
	assert.Less(t, next.Area(), scenario.Area())
}

func TestApplyCutNudgesSharedX(t *testing.T) {
	q := Quad{Pt(0, 0), Pt(-2, 10), Pt(10, 11), Pt(11, 1)}

	// Straight down from the anchor, leaving through the bottom edge at x=0.
	r := ValidateCut(q, 0, ptr(0, 5))
	require.True(t, r.Valid())
	assert.Equal(t, 1, r.Replaced)
	assert.InDelta(t, 0.0, r.Exit.X, 1e-9)

	next := ApplyCut(q, r.Replaced, *r.Exit)
	assert.Equal(t, 1.0, next[0].X)
	for i := range next {
		assert.NotEqual(t, next[i].X, next.Corner(i+1).X)
	}
}

func TestDiscarded(t *testing.T) {
	r := ValidateCut(scenario, 0, ptr(115, 157.5))
	require.True(t, r.Valid())

	tri := Discarded(scenario, 0, r)
	assert.Equal(t, scenario[0], tri.A)
	assert.Equal(t, scenario[1], tri.B)
	assert.Equal(t, *r.Exit, tri.C)

	assert.Panics(t, func() { Discarded(scenario, 0, NoCut()) })
}
