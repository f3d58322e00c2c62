package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/bubble-arcade/internal/core"
)

// ValidationError contains details about an invalid configuration value.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate rejects configurations the engine cannot run with.
func (c BubblesConfig) Validate() error {
	f := c.Field
	switch {
	case f.Cols < 1 || f.Rows < 1:
		return ValidationError{Code: "FIELD_SIZE", Message: fmt.Sprintf("field %dx%d must be at least 1x1", f.Cols, f.Rows)}
	case f.CellRadius <= 0:
		return ValidationError{Code: "CELL_RADIUS", Message: fmt.Sprintf("cell_radius %v must be positive", f.CellRadius)}
	case f.Spacing < 0:
		return ValidationError{Code: "SPACING", Message: fmt.Sprintf("spacing %v must not be negative", f.Spacing)}
	case f.MinMatch < 1:
		return ValidationError{Code: "MIN_MATCH", Message: fmt.Sprintf("min_match %d must be at least 1", f.MinMatch)}
	case f.WinFraction < 0 || f.WinFraction > 1:
		return ValidationError{Code: "WIN_FRACTION", Message: fmt.Sprintf("win_fraction %v must be in [0, 1]", f.WinFraction)}
	case f.DestroyDelay < 0 || f.AttachDuration < 0:
		return ValidationError{Code: "DELAY", Message: "destroy_delay and attach_duration must not be negative"}
	}

	p := c.Projectile
	switch {
	case p.MinSpeed <= 0 || p.MaxSpeed < p.MinSpeed:
		return ValidationError{Code: "SPEED", Message: fmt.Sprintf("speeds %v..%v must be positive and ordered", p.MinSpeed, p.MaxSpeed)}
	case p.MinGravity < 0 || p.MaxGravity < p.MinGravity:
		return ValidationError{Code: "GRAVITY", Message: fmt.Sprintf("gravity %v..%v must be non-negative and ordered", p.MinGravity, p.MaxGravity)}
	case p.Radius <= 0:
		return ValidationError{Code: "RADIUS", Message: fmt.Sprintf("projectile radius %v must be positive", p.Radius)}
	case p.SpreadArc < 0 || p.SpreadArc >= 180:
		return ValidationError{Code: "SPREAD", Message: fmt.Sprintf("spread_arc %v must be in [0, 180)", p.SpreadArc)}
	}

	s := c.Shooter
	if s.PreviewStep <= 0 || s.PreviewTime < 0 {
		return ValidationError{Code: "PREVIEW", Message: "preview_step must be positive and preview_time non-negative"}
	}
	if s.AimLimit <= 0 || s.AimLimit >= 90 {
		return ValidationError{Code: "AIM_LIMIT", Message: fmt.Sprintf("aim_limit %v must be in (0, 90)", s.AimLimit)}
	}
	if s.InitialPower < 0 || s.InitialPower > 1 {
		return ValidationError{Code: "POWER", Message: fmt.Sprintf("initial_power %v must be in [0, 1]", s.InitialPower)}
	}

	if len(c.Palette) == 0 || len(c.Palette) > 10 {
		return ValidationError{Code: "PALETTE", Message: fmt.Sprintf("palette has %d colors, expected 1 to 10", len(c.Palette))}
	}
	for i, e := range c.Palette {
		if utf8.RuneCountInString(e.Glyph) != 1 {
			return ValidationError{Code: "PALETTE", Message: fmt.Sprintf("palette entry %d glyph %q must be one character", i, e.Glyph)}
		}
		if _, ok := core.ParseColor(e.Color); !ok {
			return ValidationError{Code: "PALETTE", Message: fmt.Sprintf("palette entry %d has unknown color %q", i, e.Color)}
		}
	}
	return nil
}
