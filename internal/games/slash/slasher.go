package slash

import "github.com/vovakirdan/tui-slash/internal/geom"

// Slasher is the body that travels along a committed aim. The cut only takes
// effect once it gets across; touching a ball on the way ends the run.
type Slasher struct {
	From  geom.Point
	To    geom.Point
	Pos   geom.Point
	Speed float64 // area units per tick
}

// NewSlasher starts a slasher at from, heading for to.
func NewSlasher(from, to geom.Point, speed float64) *Slasher {
	return &Slasher{From: from, To: to, Pos: from, Speed: speed}
}

// Advance moves one tick and reports whether the slasher reached its target.
func (s *Slasher) Advance() bool {
	remaining := s.Pos.Dist(s.To)
	if remaining <= s.Speed {
		s.Pos = s.To
		return true
	}
	s.Pos = s.Pos.Add(s.To.Sub(s.Pos).Normalize().Scale(s.Speed))
	return false
}

// Progress returns how far along the path the slasher is, from 0 to 1.
func (s *Slasher) Progress() float64 {
	total := s.From.Dist(s.To)
	if total < geom.Tolerance {
		return 1
	}
	return s.From.Dist(s.Pos) / total
}

// Hit returns the index of the first ball closer than reach, or -1.
func (s *Slasher) Hit(balls []Ball, reach float64) int {
	for i, b := range balls {
		if s.Pos.Dist(b.Pos) < reach {
			return i
		}
	}
	return -1
}

// NearAny reports whether the slasher is within dist of any of the lines.
func (s *Slasher) NearAny(lines []geom.Line, dist float64) bool {
	for _, l := range lines {
		if l.Distance(s.Pos) < dist {
			return true
		}
	}
	return false
}
