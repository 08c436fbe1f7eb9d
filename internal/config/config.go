// Package config provides YAML-based game configuration loading and
// difficulty management for Slash.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-slash/internal/geom"
)

// ErrInvalidArea is returned when the configured starting area cannot be played.
var ErrInvalidArea = errors.New("config: invalid area")

// SlashConfig contains all configuration for the Slash game.
type SlashConfig struct {
	Area       AreaConfig       `yaml:"area"`
	Balls      BallsConfig      `yaml:"balls"`
	Slasher    SlasherConfig    `yaml:"slasher"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AreaConfig defines the playfield and the starting quadrilateral, in area
// units with y growing down.
type AreaConfig struct {
	Width   float64     `yaml:"width"`
	Height  float64     `yaml:"height"`
	Corners [][]float64 `yaml:"corners"` // four [x, y] pairs, top-left then counterclockwise on screen
}

// BallsConfig defines the bouncing balls.
type BallsConfig struct {
	Initial int     `yaml:"initial"`
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"` // area units per second
	Max     int     `yaml:"max"`   // spawn cap; 0 means no cap
}

// SlasherConfig defines the moving cut.
type SlasherConfig struct {
	Speed       float64 `yaml:"speed"`        // area units per second
	HitFactor   float64 `yaml:"hit_factor"`   // game over below hit_factor * ball radius
	EndDistance float64 `yaml:"end_distance"` // commit once this close to a far edge
	AimStep     float64 `yaml:"aim_step"`     // pointer movement per key press
}

// RulesConfig defines scoring and winning.
type RulesConfig struct {
	TargetFraction float64 `yaml:"target_fraction"` // win at or below this share of the start area
	CutPoints      int     `yaml:"cut_points"`
	AreaPerPoint   float64 `yaml:"area_per_point"`
	Boundary       string  `yaml:"boundary"` // "exclusive" or "inclusive"
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed at max difficulty
	ExtraBalls      int     `yaml:"extra_balls"`      // Extra starting balls at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Quad returns the configured starting area.
// Call Validate first; missing corners come back as the origin.
func (a AreaConfig) Quad() geom.Quad {
	var q geom.Quad
	for i := range min(len(a.Corners), 4) {
		if len(a.Corners[i]) == 2 {
			q[i] = geom.Pt(a.Corners[i][0], a.Corners[i][1])
		}
	}
	return q
}

// Validate reports the first problem that would make the config unplayable.
func (c SlashConfig) Validate() error {
	if c.Area.Width <= 0 || c.Area.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalidArea, c.Area.Width, c.Area.Height)
	}
	if len(c.Area.Corners) != 4 {
		return fmt.Errorf("%w: need 4 corners, got %d", ErrInvalidArea, len(c.Area.Corners))
	}
	for i, corner := range c.Area.Corners {
		if len(corner) != 2 {
			return fmt.Errorf("%w: corner %d needs [x, y]", ErrInvalidArea, i)
		}
		x, y := corner[0], corner[1]
		if x < 0 || x > c.Area.Width || y < 0 || y > c.Area.Height {
			return fmt.Errorf("%w: corner %d (%g, %g) outside %gx%g", ErrInvalidArea, i, x, y, c.Area.Width, c.Area.Height)
		}
	}
	if err := c.Area.Quad().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArea, err)
	}

	switch {
	case c.Balls.Initial < 0:
		return fmt.Errorf("config: invalid balls.initial %d", c.Balls.Initial)
	case c.Balls.Radius <= 0:
		return fmt.Errorf("config: invalid balls.radius %g", c.Balls.Radius)
	case c.Balls.Speed < 0:
		return fmt.Errorf("config: invalid balls.speed %g", c.Balls.Speed)
	case c.Slasher.Speed <= 0:
		return fmt.Errorf("config: invalid slasher.speed %g", c.Slasher.Speed)
	case c.Slasher.AimStep <= 0:
		return fmt.Errorf("config: invalid slasher.aim_step %g", c.Slasher.AimStep)
	case c.Rules.TargetFraction <= 0 || c.Rules.TargetFraction >= 1:
		return fmt.Errorf("config: invalid rules.target_fraction %g, want (0, 1)", c.Rules.TargetFraction)
	case c.Rules.AreaPerPoint <= 0:
		return fmt.Errorf("config: invalid rules.area_per_point %g", c.Rules.AreaPerPoint)
	}

	if _, err := geom.ParseBoundary(c.Rules.Boundary); err != nil {
		return fmt.Errorf("config: invalid rules.boundary: %w", err)
	}
	return nil
}
