package geom

// CutResult is the outcome of validating a candidate cut. A nil Exit means the
// pointer does not describe a cut through the area; that is a normal outcome,
// not an error.
type CutResult struct {
	// Exit is where the cut line leaves the area, on one of the two edges
	// that do not touch the anchor.
	Exit *Point

	// Replaced is the index of the corner whose slot receives Exit once the
	// cut is applied, or -1 when there is no cut.
	Replaced int
}

// NoCut is the invalid result.
func NoCut() CutResult {
	return CutResult{Replaced: -1}
}

// Valid reports whether the result carries an exit point.
func (r CutResult) Valid() bool {
	return r.Exit != nil
}

// ValidateCut decides whether a straight cut from corner anchor toward pointer
// stays inside q, and if so where it leaves the area.
//
// The two corners next to the anchor are sideA (anchor+1) and sideB
// (anchor+3); the opposite corner is anchor+2. The pointer must lie on the
// same side as the opposite corner of both the anchor-sideA and anchor-sideB
// lines. A pointer exactly on the anchor-sideA line counts as inside while one
// exactly on the anchor-sideB line does not, so a boundary point is claimed
// by at most one side. A cut that leaves through the opposite corner itself
// is rejected.
//
// A nil pointer means no cut is in progress and yields NoCut. An anchor
// outside [0, 3] panics.
func ValidateCut(q Quad, anchor int, pointer *Point) CutResult {
	mustCorner(anchor)
	if pointer == nil {
		return NoCut()
	}

	a := q[anchor]
	ia, io, ib := (anchor+1)%4, (anchor+2)%4, (anchor+3)%4
	sideA, opposite, sideB := q[ia], q[io], q[ib]
	target := *pointer

	boundA := NewLine(a, sideA)
	boundB := NewLine(a, sideB)
	if !insideInclusive(boundA, opposite, target) || !insideExclusive(boundB, opposite, target) {
		return NoCut()
	}

	cut := NewLine(a, target)
	exitA, okA := forwardHit(cut, NewLine(opposite, sideA))
	exitB, okB := forwardHit(cut, NewLine(opposite, sideB))

	var r CutResult
	switch {
	case okA && okB:
		// The nearer edge is the one the cut crosses first.
		if a.Dist(exitB) < a.Dist(exitA) {
			r = CutResult{Exit: &exitB, Replaced: ib}
		} else {
			r = CutResult{Exit: &exitA, Replaced: ia}
		}
	case okA:
		r = CutResult{Exit: &exitA, Replaced: ia}
	case okB:
		r = CutResult{Exit: &exitB, Replaced: ib}
	default:
		return NoCut()
	}

	// An exit on the opposite corner would fold the area into a triangle.
	if r.Exit.Near(opposite) {
		return NoCut()
	}
	return r
}

// insideInclusive reports whether p is on ref's side of the boundary, with
// points on the boundary counted as inside.
func insideInclusive(boundary Line, ref, p Point) bool {
	r := boundary.Side(ref)
	if Equal(r, 0) {
		return false
	}
	s := boundary.Side(p)
	if Equal(s, 0) {
		return true
	}
	return (r > 0) == (s > 0)
}

// insideExclusive is insideInclusive with boundary points counted as outside.
func insideExclusive(boundary Line, ref, p Point) bool {
	r := boundary.Side(ref)
	s := boundary.Side(p)
	if Equal(r, 0) || Equal(s, 0) {
		return false
	}
	return (r > 0) == (s > 0)
}

// forwardHit intersects the cut with an edge line and keeps the hit only if it
// lies ahead of the anchor along the cut direction.
func forwardHit(cut, edge Line) (Point, bool) {
	hit, ok := cut.Intersect(edge)
	if !ok || cut.Param(hit) <= Tolerance {
		return Point{}, false
	}
	return hit, true
}

// ApplyCut returns the area left after a confirmed cut: q with the replaced
// corner's slot holding exit, re-normalized so adjacent corners never share an
// x coordinate. q itself is not modified.
func ApplyCut(q Quad, replaced int, exit Point) Quad {
	return q.Replace(replaced, exit).Normalize(DefaultNudge)
}

// Discarded returns the triangle a cut removes from q: the anchor, the corner
// being replaced and the exit point. It must be computed on the area before
// ApplyCut. An invalid cut panics.
func Discarded(q Quad, anchor int, cut CutResult) Triangle {
	mustCorner(anchor)
	if !cut.Valid() {
		panic("geom: discarded region of an invalid cut")
	}
	mustCorner(cut.Replaced)
	return Triangle{A: q[anchor], B: q[cut.Replaced], C: *cut.Exit}
}
