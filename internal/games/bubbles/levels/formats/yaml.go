package formats

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Cells may be given as row strings, as explicit items, or both.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Shots    int               `yaml:"shots"`
	Rows     []string          `yaml:"rows,omitempty"`
	Items    []YAMLItem        `yaml:"items,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLItem represents a single bubble in YAML format.
type YAMLItem struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	C string `yaml:"c"` // palette index or stock color name
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Shots:    yl.Shots,
		Height:   len(yl.Rows),
		Metadata: yl.Metadata,
	}

	for r, s := range yl.Rows {
		var err error
		if level.Items, err = parseRow(level.Items, r, s); err != nil {
			return Level{}, err
		}
		level.Width = max(level.Width, len([]rune(s)))
	}

	palette := core.DefaultPalette()
	for i, it := range yl.Items {
		color, err := strconv.Atoi(it.C)
		if err != nil {
			c, ok := palette.Lookup(it.C)
			if !ok {
				return Level{}, fmt.Errorf("item %d: unknown color %q", i, it.C)
			}
			color = int(c)
		}
		level.Items = append(level.Items, core.Item{Coord: core.C(it.X, it.Y), Color: color})
		level.Width = max(level.Width, it.X+1)
		level.Height = max(level.Height, it.Y+1)
	}

	return level, nil
}

// FormatYAML renders level as YAML with one row string per grid row.
func FormatYAML(level Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel{
		ID:       level.ID,
		Name:     level.Name,
		Shots:    level.Shots,
		Rows:     RowStrings(level),
		Metadata: level.Metadata,
	})
}
