// Package formats provides pluggable level file format parsers.
package formats

import (
	"bytes"
	"strconv"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Shots    int
	Width    int // widest row
	Height   int // number of rows
	Items    []core.Item
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".lvl", ".yaml", ".yml"}
}

// RowStrings renders the items as row strings, '.' marking empty slots.
// Items that cannot be written as a single digit are skipped.
func RowStrings(level Level) []string {
	width, height := level.Width, level.Height
	for _, it := range level.Items {
		width = max(width, it.Coord.Col+1)
		height = max(height, it.Coord.Row+1)
	}
	rows := make([][]byte, height)
	for r := range rows {
		rows[r] = bytes.Repeat([]byte{'.'}, width)
	}
	for _, it := range level.Items {
		if it.Coord.Col < 0 || it.Coord.Row < 0 || it.Color < 0 || it.Color > 9 {
			continue
		}
		rows[it.Coord.Row][it.Coord.Col] = byte('0' + it.Color)
	}
	out := make([]string, height)
	for r, b := range rows {
		out[r] = string(b)
	}
	return out
}

// isEmptySlot reports whether r marks a gap in a row string.
func isEmptySlot(r rune) bool {
	return r == '.' || r == '-' || r == ' '
}

// parseRow appends the items of one row string. A digit is a palette index.
func parseRow(dst []core.Item, row int, s string) ([]core.Item, error) {
	for col, r := range []rune(s) {
		switch {
		case isEmptySlot(r):
			continue
		case r >= '0' && r <= '9':
			dst = append(dst, core.Item{Coord: core.C(col, row), Color: int(r - '0')})
		default:
			return dst, &SyntaxError{Row: row, Col: col, Msg: "invalid cell " + strconv.QuoteRune(r)}
		}
	}
	return dst, nil
}

// SyntaxError reports a malformed level file.
type SyntaxError struct {
	Line int // one-based source line, 0 when unknown
	Row  int // zero-based grid row, or -1 for the header
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	var prefix string
	if e.Line > 0 {
		prefix = "line " + strconv.Itoa(e.Line) + ": "
	}
	if e.Row < 0 {
		return prefix + "header: " + e.Msg
	}
	return prefix + "row " + strconv.Itoa(e.Row) + ", col " + strconv.Itoa(e.Col) + ": " + e.Msg
}
