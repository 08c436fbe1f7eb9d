package slash

import "math"

// Snapshot contains the game state needed to compare or replay runs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Score  int
	Cuts   int
	Round  int
	Anchor int
	State  string
	Mode   int // 0=Classic, 1=Endless

	// Area corners, 8 floats: X0, Y0 .. X3, Y3
	AreaData []float64

	// Each ball is 4 floats: X, Y, VX, VY
	BallData []float64

	// Empty when there is no pointer, otherwise X, Y
	Pointer []float64

	// Empty when no slash is in flight, otherwise FromX, FromY, ToX, ToY, X, Y
	SlasherData []float64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	area := make([]float64, 0, 8)
	for _, p := range g.world.area {
		area = append(area, p.X, p.Y)
	}

	balls := make([]float64, 0, len(g.world.balls)*4)
	for _, b := range g.world.balls {
		balls = append(balls, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}

	var pointer []float64
	if p, ok := g.world.Pointer(); ok {
		pointer = []float64{p.X, p.Y}
	}

	var slasher []float64
	if s := g.slasher; s != nil {
		slasher = []float64{s.From.X, s.From.Y, s.To.X, s.To.Y, s.Pos.X, s.Pos.Y}
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:       g.score,
		Cuts:        g.totalCuts,
		Round:       g.round,
		Anchor:      g.world.anchor,
		State:       g.state,
		Mode:        int(g.mode),
		AreaData:    area,
		BallData:    balls,
		Pointer:     pointer,
		SlasherData: slasher,
		RNGState:    g.world.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cuts)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Round)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Anchor) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)   //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, data := range [][]float64{snap.AreaData, snap.BallData, snap.Pointer, snap.SlasherData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + snap.RNGState
	return h
}
