package slash

import "math"

// SimpleRNG is a deterministic LCG, so a seed and an input log replay a game
// exactly.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates an RNG; seed 0 is mapped to 1.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next advances the generator.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1) built from the high 53 bits.
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Angle returns a direction in [0, 2π).
func (r *SimpleRNG) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// State exposes the raw state for snapshots.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
