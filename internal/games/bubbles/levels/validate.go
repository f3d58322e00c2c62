package levels

import (
	"fmt"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a level against the board it will be played on.
// Checks:
//   - Shot budget is positive
//   - Level has at least one bubble in the top row
//   - Every item fits the board, uses a palette color and a unique slot
//
// The grid drops bad items silently; Validate reports the first one.
func Validate(l Level, cols, rows int, palette core.Palette) error {
	if l.Shots <= 0 {
		return ValidationError{
			Code:    "NO_SHOTS",
			Message: fmt.Sprintf("shot budget %d must be positive", l.Shots),
		}
	}

	seen := make(map[core.Coord]bool, len(l.Items))
	top := 0
	for _, it := range l.Items {
		if !it.Coord.InBounds(cols, rows) {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("item at %v outside %dx%d board", it.Coord, cols, rows),
			}
		}
		if !palette.Contains(it.Color) {
			return ValidationError{
				Code:    "INVALID_COLOR",
				Message: fmt.Sprintf("item at %v has color %d, palette has %d", it.Coord, it.Color, len(palette)),
			}
		}
		if seen[it.Coord] {
			return ValidationError{
				Code:    "DUPLICATE",
				Message: fmt.Sprintf("slot %v used twice", it.Coord),
			}
		}
		seen[it.Coord] = true
		if it.Coord.Row == 0 {
			top++
		}
	}

	if top == 0 {
		return ValidationError{
			Code:    "NO_ANCHOR",
			Message: "level has no bubbles in the top row",
		}
	}
	return nil
}
