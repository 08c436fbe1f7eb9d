package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SlashConfig
	if err := yaml.Unmarshal(GetDefaultYAML("slash"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSlashConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSlashConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadSlashCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slash.yaml")
	data := []byte("balls:\n  initial: 3\nrules:\n  boundary: inclusive\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlash(path)
	if err != nil {
		t.Fatalf("LoadSlash() error = %v", err)
	}
	if cfg.Balls.Initial != 3 {
		t.Errorf("Balls.Initial = %d, expected 3", cfg.Balls.Initial)
	}
	if cfg.Rules.Boundary != "inclusive" {
		t.Errorf("Rules.Boundary = %q, expected inclusive", cfg.Rules.Boundary)
	}
	// Keys the file leaves out keep their defaults
	if cfg.Slasher.Speed != DefaultSlashConfig().Slasher.Speed {
		t.Errorf("Slasher.Speed = %g, expected default", cfg.Slasher.Speed)
	}
}

func TestLoadSlashErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlash(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("area: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlash(broken); err == nil {
		t.Error("unparsable custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("area:\n  corners: [[0, 0], [1, 1], [2, 2]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSlash(bad)
	if !errors.Is(err, ErrInvalidArea) {
		t.Errorf("LoadSlash() error = %v, expected ErrInvalidArea", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*SlashConfig)
		wantArea bool
	}{
		{"zero width", func(c *SlashConfig) { c.Area.Width = 0 }, true},
		{"corner outside", func(c *SlashConfig) { c.Area.Corners[2] = []float64{300, 172} }, true},
		{"corner missing y", func(c *SlashConfig) { c.Area.Corners[1] = []float64{12} }, true},
		{"corners share a quadrant", func(c *SlashConfig) { c.Area.Corners[1] = []float64{30, 40} }, true},
		{"negative radius", func(c *SlashConfig) { c.Balls.Radius = -1 }, false},
		{"stopped slasher", func(c *SlashConfig) { c.Slasher.Speed = 0 }, false},
		{"target of one", func(c *SlashConfig) { c.Rules.TargetFraction = 1 }, false},
		{"unknown boundary", func(c *SlashConfig) { c.Rules.Boundary = "fuzzy" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSlashConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if got := errors.Is(err, ErrInvalidArea); got != tc.wantArea {
				t.Errorf("errors.Is(ErrInvalidArea) = %v, expected %v (%v)", got, tc.wantArea, err)
			}
		})
	}
}

func TestAreaQuad(t *testing.T) {
	q := DefaultSlashConfig().Area.Quad()
	if q[0].X != 20 || q[0].Y != 25 || q[3].X != 228 {
		t.Errorf("Quad() = %v", q)
	}
}

func TestApplySlashPreset(t *testing.T) {
	base := DefaultSlashConfig()

	easy := DefaultSlashConfig()
	ApplySlashPreset(&easy, DifficultyEasy)
	if easy.Balls.Speed >= base.Balls.Speed {
		t.Errorf("easy ball speed %g should be below %g", easy.Balls.Speed, base.Balls.Speed)
	}
	if !easy.Difficulty.Enabled || easy.Difficulty.InitialLevel != 0 {
		t.Errorf("easy difficulty = %+v", easy.Difficulty)
	}

	hard := DefaultSlashConfig()
	ApplySlashPreset(&hard, DifficultyHard)
	if hard.Balls.Initial != base.Balls.Initial+1 {
		t.Errorf("hard Balls.Initial = %d, expected %d", hard.Balls.Initial, base.Balls.Initial+1)
	}
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %g, expected 0.7", hard.Difficulty.InitialLevel)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should still validate: %v", err)
	}

	fixed := DefaultSlashConfig()
	ApplySlashPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultSlashConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level(0, 0) = %g, expected 0", got)
	}
	if got := d.Level(250, 0); got != 0.5 {
		t.Errorf("Level(250, 0) = %g, expected 0.5", got)
	}
	if got := d.Level(10000, 0); got != 1 {
		t.Errorf("Level should clamp at 1, got %g", got)
	}
	if got := d.Speed(40, 500, 0); got != 80 {
		t.Errorf("Speed(40) at max level = %g, expected 80", got)
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level after SetInitialLevel(0.5) = %g", got)
	}
	if got := d.ExtraBalls(); got != 1 {
		t.Errorf("ExtraBalls() at 0.5 = %d, expected 1", got)
	}

	d.SetInitialLevel(7)
	if d.InitialLevel() != 1 {
		t.Errorf("SetInitialLevel should clamp, got %g", d.InitialLevel())
	}

	zero := cfg
	zero.Progression.MaxAt = 0
	if got := NewDifficultyManager(zero).Level(3, 0); got != 1 {
		t.Errorf("Level with max_at 0 = %g, expected 1", got)
	}

	cfg.Enabled = false
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() || fixed.Level(10000, 0) != 0 {
		t.Error("disabled progression should stay at the initial level")
	}
}
