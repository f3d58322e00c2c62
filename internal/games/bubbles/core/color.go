package core

import "strings"

// Color is a palette index. Two bubbles match only if their colors are equal.
type Color uint8

// Swatch describes one palette entry.
type Swatch struct {
	Name  string
	Glyph rune
}

// Palette is the ordered list of colors a level may reference by index.
type Palette []Swatch

// DefaultPalette returns the six stock bubble colors.
func DefaultPalette() Palette {
	return Palette{
		{Name: "red", Glyph: 'R'},
		{Name: "green", Glyph: 'G'},
		{Name: "blue", Glyph: 'B'},
		{Name: "yellow", Glyph: 'Y'},
		{Name: "purple", Glyph: 'P'},
		{Name: "cyan", Glyph: 'C'},
	}
}

// Contains reports whether c is a valid index into the palette.
func (p Palette) Contains(c int) bool {
	return c >= 0 && c < len(p)
}

// Swatch returns the entry for c, or a placeholder if c is out of range.
func (p Palette) Swatch(c Color) Swatch {
	if !p.Contains(int(c)) {
		return Swatch{Name: "unknown", Glyph: '?'}
	}
	return p[c]
}

// Glyph returns the single-character representation of c.
func (p Palette) Glyph(c Color) rune {
	return p.Swatch(c).Glyph
}

// Lookup finds a color by name or glyph, case-insensitively.
func (p Palette) Lookup(s string) (Color, bool) {
	for i, sw := range p {
		if strings.EqualFold(sw.Name, s) || strings.EqualFold(string(sw.Glyph), s) {
			return Color(i), true
		}
	}
	return 0, false
}
