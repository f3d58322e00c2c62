package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBubbles(GetDefaultYAML())
	if err != nil {
		t.Fatalf("parseBubbles(embedded) error = %v", err)
	}
	want := DefaultBubblesConfig()
	if cfg.Field != want.Field || cfg.Projectile != want.Projectile ||
		cfg.Shooter != want.Shooter || cfg.Scoring != want.Scoring || cfg.Difficulty != want.Difficulty {
		t.Errorf("embedded config differs from DefaultBubblesConfig():\n%+v\n%+v", cfg, want)
	}
	if len(cfg.Palette) != len(want.Palette) {
		t.Fatalf("palette has %d entries, expected %d", len(cfg.Palette), len(want.Palette))
	}
	for i := range want.Palette {
		if cfg.Palette[i] != want.Palette[i] {
			t.Errorf("palette[%d] = %+v, expected %+v", i, cfg.Palette[i], want.Palette[i])
		}
	}
}

func TestLoadBubblesCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("field:\n  min_match: 4\npalette:\n  - {name: red, glyph: R, color: red}\n  - {name: blue, glyph: B, color: blue}\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBubbles(path)
	if err != nil {
		t.Fatalf("LoadBubbles() error = %v", err)
	}
	if cfg.Field.MinMatch != 4 {
		t.Errorf("MinMatch = %d, expected 4", cfg.Field.MinMatch)
	}
	if cfg.Field.Cols != 10 {
		t.Errorf("Cols = %d, expected default 10 to survive", cfg.Field.Cols)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("palette has %d entries, expected the file's 2", len(cfg.Palette))
	}
}

func TestLoadBubblesErrors(t *testing.T) {
	if _, err := LoadBubbles(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadBubbles(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  win_fraction: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBubbles(path)
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Code != "WIN_FRACTION" {
		t.Errorf("LoadBubbles(bad) error = %v, expected WIN_FRACTION", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BubblesConfig)
		code   string
	}{
		{"defaults", func(*BubblesConfig) {}, ""},
		{"zero cols", func(c *BubblesConfig) { c.Field.Cols = 0 }, "FIELD_SIZE"},
		{"min match", func(c *BubblesConfig) { c.Field.MinMatch = 0 }, "MIN_MATCH"},
		{"speeds reversed", func(c *BubblesConfig) { c.Projectile.MaxSpeed = 1 }, "SPEED"},
		{"gravity reversed", func(c *BubblesConfig) { c.Projectile.MinGravity = 9 }, "GRAVITY"},
		{"preview step", func(c *BubblesConfig) { c.Shooter.PreviewStep = 0 }, "PREVIEW"},
		{"zero aim limit", func(c *BubblesConfig) { c.Shooter.AimLimit = 0 }, "AIM_LIMIT"},
		{"horizontal aim limit", func(c *BubblesConfig) { c.Shooter.AimLimit = 90 }, "AIM_LIMIT"},
		{"negative aim limit", func(c *BubblesConfig) { c.Shooter.AimLimit = -10 }, "AIM_LIMIT"},
		{"empty palette", func(c *BubblesConfig) { c.Palette = nil }, "PALETTE"},
		{"long glyph", func(c *BubblesConfig) { c.Palette[0].Glyph = "RR" }, "PALETTE"},
		{"unknown color", func(c *BubblesConfig) { c.Palette[1].Color = "mauve" }, "PALETTE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBubblesConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Code != tc.code {
				t.Errorf("Validate() = %v, expected code %s", err, tc.code)
			}
		})
	}
}

func TestApplyBubblesPreset(t *testing.T) {
	cfg := DefaultBubblesConfig()
	ApplyBubblesPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Projectile.SpreadArc != 14 {
		t.Errorf("SpreadArc = %v, expected 14", cfg.Projectile.SpreadArc)
	}

	ApplyBubblesPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if ParsePreset("hard") != DifficultyHard || ParsePreset("brutal") != "" {
		t.Error("ParsePreset() mismatch")
	}
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DefaultBubblesConfig().Difficulty)

	tests := []struct {
		rounds int
		level  float64
		shots  int
	}{
		{0, 0, 20},
		{5, 0.5, 18},
		{10, 1, 15},
		{50, 1, 15},
	}
	for _, tc := range tests {
		p := Progress{RoundsWon: tc.rounds}
		if got := d.Level(p); got != tc.level {
			t.Errorf("Level(%d rounds) = %v, expected %v", tc.rounds, got, tc.level)
		}
		if got := d.Shots(20, p); got != tc.shots {
			t.Errorf("Shots(20, %d rounds) = %d, expected %d", tc.rounds, got, tc.shots)
		}
	}

	full := Progress{RoundsWon: 10}
	if got := d.Shots(2, full); got != 1 {
		t.Errorf("Shots(2) = %d, expected floor of 1", got)
	}
	if got := d.SpreadArc(10, full); got != 15 {
		t.Errorf("SpreadArc(10) = %v, expected 15", got)
	}
}

func TestDifficultyManagerModes(t *testing.T) {
	base := DefaultBubblesConfig().Difficulty

	tests := []struct {
		name   string
		mutate func(*DifficultyConfig)
		p      Progress
		want   float64
	}{
		{"disabled keeps initial", func(c *DifficultyConfig) { c.Enabled = false; c.InitialLevel = 0.4 }, Progress{RoundsWon: 10}, 0.4},
		{"type none keeps initial", func(c *DifficultyConfig) { c.Progression.Type = "none"; c.InitialLevel = 0.2 }, Progress{RoundsWon: 10}, 0.2},
		{"initial clamped", func(c *DifficultyConfig) { c.Enabled = false; c.InitialLevel = 3 }, Progress{}, 1},
		{"score progression", func(c *DifficultyConfig) { c.Progression.Type = "score"; c.Progression.MaxAt = 200 }, Progress{Score: 50}, 0.25},
		{"zero max reaches full at once", func(c *DifficultyConfig) { c.Progression.MaxAt = 0 }, Progress{RoundsWon: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if got := NewDifficultyManager(cfg).Level(tt.p); got != tt.want {
				t.Errorf("Level() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSearchPaths(t *testing.T) {
	paths := searchPaths("bubbles.yaml")
	if len(paths) == 0 || paths[len(paths)-1] != filepath.Join("configs", "bubbles.yaml") {
		t.Errorf("searchPaths() = %v, expected the local configs dir last", paths)
	}
	if home, err := os.UserHomeDir(); err == nil {
		if want := filepath.Join(home, ".bubbles", "configs", "bubbles.yaml"); paths[0] != want {
			t.Errorf("searchPaths()[0] = %q, expected %q", paths[0], want)
		}
	}
}
