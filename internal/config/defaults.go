package config

import (
	_ "embed"
)

//go:embed defaults/slash.yaml
var defaultSlashYAML []byte

// DefaultSlashConfig returns the hardcoded Slash configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultSlashConfig() SlashConfig {
	return SlashConfig{
		Area: AreaConfig{
			Width:  250,
			Height: 200,
			Corners: [][]float64{
				{20, 25},
				{12, 180},
				{235, 172},
				{228, 18},
			},
		},
		Balls: BallsConfig{
			Initial: 1,
			Radius:  3,
			Speed:   40,
			Max:     0,
		},
		Slasher: SlasherConfig{
			Speed:       90,
			HitFactor:   2.8,
			EndDistance: 2,
			AimStep:     4,
		},
		Rules: RulesConfig{
			TargetFraction: 0.2,
			CutPoints:      10,
			AreaPerPoint:   100,
			Boundary:       "exclusive",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraBalls:      2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game ID,
// or nil if there is none.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "slash", "slash_endless":
		return defaultSlashYAML
	default:
		return nil
	}
}
