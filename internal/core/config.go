package core

import "time"

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Events holds short log lines for anything notable that happened this
	// tick ("slash committed", "ball hit"). The platform may show or log them.
	Events []string
}

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeGameOver  Outcome = "gameover"
	OutcomeAbandoned Outcome = "abandoned"
)

// RunSummary describes a finished (or abandoned) run for persistence.
type RunSummary struct {
	GameID   string
	Score    int
	Cuts     int
	AreaLeft float64 // Fraction of the starting area still in play
	Balls    int
	Outcome  Outcome
	Ticks    int
	Duration time.Duration
}
