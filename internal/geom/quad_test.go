package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box is a plain quadrant-shaped area: top-left, bottom-left, bottom-right,
// top-right with y growing down.
var box = Quad{Pt(20, 25), Pt(12, 180), Pt(235, 172), Pt(228, 18)}

func TestQuadAreaAndCenter(t *testing.T) {
	square := Quad{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	assert.InDelta(t, 100.0, square.Area(), Tolerance)
	assert.True(t, square.Center().Near(Pt(5, 5)))

	// Winding does not change the area
	reversed := Quad{square[3], square[2], square[1], square[0]}
	assert.InDelta(t, square.Area(), reversed.Area(), Tolerance)
	assert.InDelta(t, -square.SignedArea(), reversed.SignedArea(), Tolerance)
}

func TestQuadContains(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", box.Center(), true},
		{"near a corner inside", Pt(25, 30), true},
		{"on a corner", box[2], true},
		{"left of everything", Pt(0, 100), false},
		{"below", Pt(120, 199), false},
		{"far away", Pt(1000, 1000), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, box.Contains(tc.p))
		})
	}
}

func TestQuadValidate(t *testing.T) {
	require.NoError(t, box.Validate())

	// Two corners bunched in the top-left quadrant
	bad := Quad{Pt(0, 0), Pt(10, 10), Pt(100, 100), Pt(100, 0)}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotQuadrants)
}

func TestQuadNormalize(t *testing.T) {
	q := Quad{Pt(10, 10), Pt(10, 100), Pt(200, 110), Pt(200, 5)}
	n := q.Normalize(DefaultNudge)

	assert.Equal(t, 11.0, n[0].X, "left corner moves right, toward the center")
	assert.Equal(t, 10.0, n[1].X)
	assert.Equal(t, 199.0, n[2].X, "right corner moves left, toward the center")
	assert.Equal(t, 200.0, n[3].X)
	for i := range n {
		assert.NotEqual(t, n[i].X, n.Corner(i+1).X, "corners %d and %d share x", i, (i+1)%4)
	}

	// Input untouched
	assert.Equal(t, 10.0, q[0].X)

	// Already valid areas pass through unchanged
	assert.Equal(t, box, box.Normalize(DefaultNudge))
}

func TestQuadReplace(t *testing.T) {
	r := box.Replace(2, Pt(1, 2))
	assert.Equal(t, Pt(1, 2), r[2])
	assert.Equal(t, Pt(235, 172), box[2], "Replace must copy")

	assert.Panics(t, func() { box.Replace(4, Pt(0, 0)) })
	assert.Panics(t, func() { box.Replace(-1, Pt(0, 0)) })
}

func TestQuadSpawnExtent(t *testing.T) {
	e := box.SpawnExtent()
	assert.Equal(t, Pt(20, 25), e.Min)
	assert.Equal(t, Pt(228, 172), e.Max)

	// The extent is always ordered even when the corners overlap vertically,
	// as in the original starting area.
	s := scenario.SpawnExtent()
	assert.LessOrEqual(t, s.Min.X, s.Max.X)
	assert.LessOrEqual(t, s.Min.Y, s.Max.Y)
	assert.Equal(t, Pt(50, 140), s.Min)
	assert.Equal(t, Pt(200, 150), s.Max)

	mid := e.At(0.5, 0.5)
	assert.True(t, box.Contains(mid))
}

func TestQuadBounds(t *testing.T) {
	b := box.Bounds()
	assert.Equal(t, Pt(12, 18), b.Min)
	assert.Equal(t, Pt(235, 180), b.Max)
	assert.InDelta(t, 223.0, b.Width(), Tolerance)
	assert.InDelta(t, 162.0, b.Height(), Tolerance)
}

func TestTriangle(t *testing.T) {
	tri := Triangle{A: Pt(0, 0), B: Pt(6, 0), C: Pt(0, 6)}
	assert.True(t, tri.Centroid().Near(Pt(2, 2)))
	assert.InDelta(t, 18.0, tri.Area(), Tolerance)

	assert.True(t, tri.Contains(Pt(1, 1)))
	assert.True(t, tri.Contains(Pt(3, 0)), "boundary counts")
	assert.False(t, tri.Contains(Pt(4, 4)))

	flat := Triangle{A: Pt(0, 0), B: Pt(1, 1), C: Pt(2, 2)}
	assert.False(t, flat.Contains(Pt(1, 1)))
}
