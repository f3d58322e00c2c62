package bubbles

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/bubble-arcade/internal/config"
	"github.com/vovakirdan/bubble-arcade/internal/core"
	engine "github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels"
)

func gridConfig(f config.BubblesField) engine.GridConfig {
	return engine.GridConfig{
		Cols:         f.Cols,
		Rows:         f.Rows,
		CellRadius:   f.CellRadius,
		Spacing:      f.Spacing,
		MinMatch:     f.MinMatch,
		WinFraction:  f.WinFraction,
		DestroyDelay: f.DestroyDelay,
	}
}

func projectileConfig(p config.BubblesProjectile) engine.ProjectileConfig {
	return engine.ProjectileConfig{
		MinSpeed:            p.MinSpeed,
		MaxSpeed:            p.MaxSpeed,
		MinGravity:          p.MinGravity,
		MaxGravity:          p.MaxGravity,
		MaxPowerSpreadArc:   p.SpreadArc,
		Radius:              p.Radius,
		MandatoryWallBounce: p.WallBounce,
	}
}

func animConfig(f config.BubblesField) engine.AnimConfig {
	anim := engine.DefaultAnimConfig()
	anim.AttachDuration = f.AttachDuration
	return anim
}

func shooterConfig(s config.BubblesShooter, muzzle engine.Vec2) engine.ShooterConfig {
	return engine.ShooterConfig{
		Muzzle:      muzzle,
		PreviewStep: s.PreviewStep,
		PreviewTime: s.PreviewTime,
	}
}

// paletteFromConfig builds the engine palette and the terminal color of
// each entry. Unknown color names fall back to white.
func paletteFromConfig(entries []config.PaletteEntry) (engine.Palette, []core.Color) {
	palette := make(engine.Palette, 0, len(entries))
	colors := make([]core.Color, 0, len(entries))
	for _, e := range entries {
		glyph := '?'
		for _, r := range e.Glyph {
			glyph = r
			break
		}
		palette = append(palette, engine.Swatch{Name: e.Name, Glyph: glyph})

		c, ok := core.ParseColor(e.Color)
		if !ok {
			c = core.ColorWhite
		}
		colors = append(colors, c)
	}
	return palette, colors
}

// loadLevels returns the playable levels, sorted by ID. Levels that do not
// fit the board are skipped. A custom directory without playable levels
// falls back to the builtin set.
func loadLevels(cols, rows int, palette engine.Palette) []levels.Level {
	if levelsDir != "" {
		lvls, err := levels.NewLoader(levelsDir).LoadAll()
		if err != nil {
			logger.Error("loading levels", "dir", levelsDir, "err", err)
		}
		if playable := filterLevels(lvls, cols, rows, palette); len(playable) > 0 {
			return playable
		}
		logger.Warn("no playable levels, using builtin", "dir", levelsDir)
	}

	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		logger.Error("loading builtin levels", "err", err)
		return nil
	}
	return filterLevels(lvls, cols, rows, palette)
}

func filterLevels(lvls []levels.Level, cols, rows int, palette engine.Palette) []levels.Level {
	return slices.DeleteFunc(lvls, func(l levels.Level) bool {
		if err := levels.Validate(l, cols, rows, palette); err != nil {
			logger.Warn("skipping level", "level", l.ID, "err", err)
			return true
		}
		return false
	})
}

// PlayableLevels returns the levels a new game would play, honoring the
// current config path and levels directory.
func PlayableLevels() []levels.Level {
	cfg, err := config.LoadBubbles(configPath)
	if err != nil {
		cfg = config.DefaultBubblesConfig()
	}
	palette, _ := paletteFromConfig(cfg.Palette)
	return loadLevels(cfg.Field.Cols, cfg.Field.Rows, palette)
}

// PreviewLevel fills a scratch board with the level and returns its ASCII
// picture.
func PreviewLevel(l levels.Level) string {
	cfg, err := config.LoadBubbles(configPath)
	if err != nil {
		cfg = config.DefaultBubblesConfig()
	}
	palette, _ := paletteFromConfig(cfg.Palette)

	world := engine.NewWorld()
	gridCfg := gridConfig(cfg.Field)
	grid := engine.NewGrid(gridCfg, world, engine.NewCellPool(gridCfg.Cols*gridCfg.Rows))
	bubbles := engine.NewBubbleFactory(world, projectileConfig(cfg.Projectile), animConfig(cfg.Field), rand.New(rand.NewSource(1))) //#nosec G404 -- no randomness used
	grid.Reset(l.Items, palette, bubbles)
	return engine.RenderASCII(grid, palette)
}

// Palette returns the engine palette described by cfg.
func Palette(cfg config.BubblesConfig) engine.Palette {
	palette, _ := paletteFromConfig(cfg.Palette)
	return palette
}
