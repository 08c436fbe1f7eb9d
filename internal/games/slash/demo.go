package slash

import (
	"github.com/vovakirdan/tui-slash/internal/config"
	"github.com/vovakirdan/tui-slash/internal/export"
	"github.com/vovakirdan/tui-slash/internal/geom"
)

// demoAimTries bounds random aiming per demo cut.
const demoAimTries = 64

// DemoBoard cuts a fresh world with up to cuts random slashes and returns the
// board and how many cuts were made. Balls stand still and never block a
// slash. It stops early at the area target or when no aim yields a cut.
func DemoBoard(cfg config.SlashConfig, seed int64, cuts, balls int) (export.Board, int) {
	boundary, err := geom.ParseBoundary(cfg.Rules.Boundary)
	if err != nil {
		boundary = geom.BoundaryExclusive
	}
	w := NewWorld(WorldConfig{
		Area:       cfg.Area.Quad(),
		Boundary:   boundary,
		BallRadius: cfg.Balls.Radius,
		MaxBalls:   cfg.Balls.Max,
		Seed:       seed,
	})
	w.SetLogger(logger)
	w.SpawnBalls(balls)

	aim := NewSimpleRNG(seed + 1)
	made := 0
	for made < cuts && w.AreaFraction() > cfg.Rules.TargetFraction {
		if !aimRandom(w, aim) {
			break
		}
		if _, err := w.Commit(); err != nil {
			break
		}
		made++
	}
	w.ClearAim()

	return worldBoard(w, cfg.Area), made
}

// aimRandom aims at random points inside the area's bounds until one gives a
// valid cut.
func aimRandom(w *World, rng *SimpleRNG) bool {
	ext := w.Area().Bounds()
	for range demoAimTries {
		if w.Aim(ext.At(rng.Float64(), rng.Float64())).Valid() {
			return true
		}
	}
	return false
}

// worldBoard captures the drawable part of w.
func worldBoard(w *World, area config.AreaConfig) export.Board {
	return export.Board{
		Width:      area.Width,
		Height:     area.Height,
		Start:      w.Start(),
		Area:       w.Area(),
		Anchor:     w.Anchor(),
		Balls:      w.Positions(),
		BallRadius: w.Radius(),
		Discarded:  w.History(),
	}
}
