package slash

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slash/internal/geom"
)

// ErrNoCandidate is returned by Commit when there is no valid cut to apply.
var ErrNoCandidate = errors.New("slash: no valid cut to commit")

// spawnTries bounds rejection sampling before falling back to the area center.
const spawnTries = 16

// Ball is a bouncing ball. Vel is in area units per tick.
type Ball struct {
	Pos geom.Point
	Vel geom.Point
}

// WorldConfig sets up a World.
type WorldConfig struct {
	Area       geom.Quad
	Boundary   geom.Boundary
	BallRadius float64
	BallSpeed  float64 // area units per tick
	MaxBalls   int     // 0 means no cap
	Seed       int64
}

// CommitResult describes what a committed cut changed.
type CommitResult struct {
	Anchor      int // anchor the cut started from
	Replaced    int // corner slot that received Exit; also the new anchor
	Exit        geom.Point
	Triangle    geom.Triangle // the region thrown away
	Removed     []int         // indices into the ball set as it was before the commit
	Spawned     int
	AreaRemoved float64
}

// World owns the play area, the anchor, the balls and the pending cut. It is
// driven by a single game loop and is not safe for concurrent use.
//
// A world is Idle while no pointer is set. Aim moves it to Candidate, which
// stores only the latest validation result. Commit applies that candidate and
// returns to Idle.
type World struct {
	start  geom.Quad
	area   geom.Quad
	anchor int

	balls     []Ball
	radius    float64
	ballSpeed float64
	maxBalls  int

	pointer    *geom.Point
	cut        geom.CutResult
	classifier geom.Classifier

	history []geom.Triangle
	cuts    int

	rng    *SimpleRNG
	logger *log.Logger
}

// NewWorld creates an idle world with no balls.
func NewWorld(cfg WorldConfig) *World {
	start := cfg.Area.Normalize(geom.DefaultNudge)
	return &World{
		start:      start,
		area:       start,
		radius:     cfg.BallRadius,
		ballSpeed:  cfg.BallSpeed,
		maxBalls:   cfg.MaxBalls,
		cut:        geom.NoCut(),
		classifier: geom.Classifier{Boundary: cfg.Boundary},
		rng:        NewSimpleRNG(cfg.Seed),
		logger:     log.New(io.Discard),
	}
}

// SetLogger sets where commits are logged at debug level. Nil discards.
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	w.logger = l
}

// Area returns the current play area.
func (w *World) Area() geom.Quad { return w.area }

// Start returns the area the world (or the current round) began with.
func (w *World) Start() geom.Quad { return w.start }

// Anchor returns the index of the corner cuts start from.
func (w *World) Anchor() int { return w.anchor }

// Cuts returns how many cuts were committed since the last ResetArea.
func (w *World) Cuts() int { return w.cuts }

// Radius returns the ball radius.
func (w *World) Radius() float64 { return w.radius }

// History returns the discarded triangles since the last ResetArea.
func (w *World) History() []geom.Triangle {
	return append([]geom.Triangle(nil), w.history...)
}

// Balls returns a copy of the ball set.
func (w *World) Balls() []Ball {
	return append([]Ball(nil), w.balls...)
}

// Positions returns the ball centers in ball order.
func (w *World) Positions() []geom.Point {
	pts := make([]geom.Point, len(w.balls))
	for i, b := range w.balls {
		pts[i] = b.Pos
	}
	return pts
}

// AreaFraction returns the current area as a share of the start area.
func (w *World) AreaFraction() float64 {
	total := w.start.Area()
	if total == 0 {
		return 0
	}
	return w.area.Area() / total
}

// Pointer returns the aim point, if any.
func (w *World) Pointer() (geom.Point, bool) {
	if w.pointer == nil {
		return geom.Point{}, false
	}
	return *w.pointer, true
}

// Aim sets the pointer and re-validates the candidate cut.
func (w *World) Aim(p geom.Point) geom.CutResult {
	w.pointer = &p
	w.cut = geom.ValidateCut(w.area, w.anchor, w.pointer)
	return w.Candidate()
}

// ClearAim drops the pointer, returning the world to Idle.
func (w *World) ClearAim() {
	w.pointer = nil
	w.cut = geom.NoCut()
}

// Candidate returns the latest validation result. The exit point is a copy.
func (w *World) Candidate() geom.CutResult {
	if !w.cut.Valid() {
		return geom.NoCut()
	}
	exit := *w.cut.Exit
	return geom.CutResult{Exit: &exit, Replaced: w.cut.Replaced}
}

// FarEdges returns the two edges a cut from the anchor can leave through:
// opposite to sideA and opposite to sideB.
func (w *World) FarEdges() [2]geom.Line {
	a := w.anchor
	opposite := w.area[(a+2)%4]
	return [2]geom.Line{
		geom.NewLine(opposite, w.area[(a+1)%4]),
		geom.NewLine(opposite, w.area[(a+3)%4]),
	}
}

// Commit applies the candidate cut: the area loses the discarded triangle,
// balls inside it are removed, removed+1 new balls are spawned in the new
// area, and the anchor moves to the replaced corner. On error nothing changes.
func (w *World) Commit() (CommitResult, error) {
	if !w.cut.Valid() {
		return CommitResult{}, ErrNoCandidate
	}

	exit := *w.cut.Exit
	replaced := w.cut.Replaced
	tri := geom.Discarded(w.area, w.anchor, w.cut)
	next := geom.ApplyCut(w.area, replaced, exit)
	removed := w.classifier.Classify(tri, w.Positions())

	kept := make([]Ball, 0, len(w.balls)+1)
	r := 0
	for i, b := range w.balls {
		if r < len(removed) && removed[r] == i {
			r++
			continue
		}
		kept = append(kept, b)
	}
	spawned := w.spawn(next, w.capped(len(kept), len(removed)+1))

	res := CommitResult{
		Anchor:      w.anchor,
		Replaced:    replaced,
		Exit:        exit,
		Triangle:    tri,
		Removed:     removed,
		Spawned:     len(spawned),
		AreaRemoved: tri.Area(),
	}

	w.area = next
	w.anchor = replaced
	w.balls = append(kept, spawned...)
	w.history = append(w.history, tri)
	w.cuts++
	w.ClearAim()

	w.logger.Debug("slash committed",
		"anchor", res.Anchor,
		"replaced", res.Replaced,
		"exit", res.Exit,
		"removed", len(res.Removed),
		"spawned", res.Spawned,
		"area", w.AreaFraction(),
	)
	return res, nil
}

// capped limits want new balls so the total stays within MaxBalls.
func (w *World) capped(have, want int) int {
	if w.maxBalls <= 0 {
		return want
	}
	return max(min(want, w.maxBalls-have), 0)
}

// SpawnBalls adds up to n balls to the current area and returns how many were
// added.
func (w *World) SpawnBalls(n int) int {
	fresh := w.spawn(w.area, w.capped(len(w.balls), n))
	w.balls = append(w.balls, fresh...)
	return len(fresh)
}

func (w *World) spawn(area geom.Quad, n int) []Ball {
	if n <= 0 {
		return nil
	}
	ext := area.SpawnExtent()
	out := make([]Ball, n)
	for i := range out {
		angle := w.rng.Angle()
		out[i] = Ball{
			Pos: w.samplePoint(area, ext),
			Vel: geom.Pt(math.Cos(angle), math.Sin(angle)).Scale(w.ballSpeed),
		}
	}
	return out
}

func (w *World) samplePoint(area geom.Quad, ext geom.Extent) geom.Point {
	for range spawnTries {
		p := ext.At(w.rng.Float64(), w.rng.Float64())
		if area.Contains(p) {
			return p
		}
	}
	return area.Center()
}

// ResetArea restores the start area for a new round. Balls stay where they
// are; the start area contains every area cut from it.
func (w *World) ResetArea() {
	w.area = w.start
	w.anchor = 0
	w.history = nil
	w.cuts = 0
	w.ClearAim()
}

// SetBallSpeed changes every ball's speed, keeping its direction.
func (w *World) SetBallSpeed(speed float64) {
	w.ballSpeed = speed
	for i := range w.balls {
		dir := w.balls[i].Vel.Normalize()
		w.balls[i].Vel = dir.Scale(speed)
	}
}

// StepBalls moves every ball one tick, bouncing off the area edges.
func (w *World) StepBalls() {
	for i := range w.balls {
		w.balls[i] = w.move(w.balls[i])
	}
}

func (w *World) move(b Ball) Ball {
	if !w.area.Contains(b.Pos) {
		// Stranded by a cut; put it back in play.
		b.Pos = w.area.Center()
	}

	next := b.Pos.Add(b.Vel)
	if w.area.Contains(next) {
		b.Pos = next
		return b
	}

	edge, ok := w.crossedEdge(next)
	if !ok {
		b.Vel = b.Vel.Scale(-1)
		return b
	}

	n := w.area.Edge(edge).Normal()
	b.Vel = b.Vel.Sub(n.Scale(2 * b.Vel.Dot(n)))
	if next := b.Pos.Add(b.Vel); w.area.Contains(next) {
		b.Pos = next
	}
	return b
}

// crossedEdge returns the edge p is furthest outside of.
func (w *World) crossedEdge(p geom.Point) (int, bool) {
	sign := 1.0
	if w.area.SignedArea() < 0 {
		sign = -1
	}
	worst, edge := -geom.Tolerance, -1
	for i := range 4 {
		if s := sign * w.area.Edge(i).Side(p); s < worst {
			worst, edge = s, i
		}
	}
	return edge, edge >= 0
}
