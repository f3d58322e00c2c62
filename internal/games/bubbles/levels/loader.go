// Package levels provides level loading functionality for the bubble shooter.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles/levels/formats"
)

//go:embed builtin
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Shots    int
	Width    int
	Height   int
	Items    []core.Item
	Metadata map[string]string
	FilePath string
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Colors returns the distinct palette indexes used by the level in
// ascending order.
func (l *Level) Colors() []core.Color {
	var seen [256]bool
	for _, it := range l.Items {
		if it.Color >= 0 && it.Color < len(seen) {
			seen[it.Color] = true
		}
	}
	var out []core.Color
	for c, ok := range seen {
		if ok {
			out = append(out, core.Color(c))
		}
	}
	return out
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// NewFSLoader creates a loader over dir inside fsys.
func NewFSLoader(fsys fs.FS, dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{FS: fsys, Root: dir}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	return NewFSLoader(builtinFS, "builtin")
}

// Paths returns every file with a supported extension, sorted.
func (l *Loader) Paths() ([]string, error) {
	var paths []string
	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	paths, err := l.Paths()
	if err != nil {
		return nil, err
	}

	var levels []Level
	for _, p := range paths {
		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			continue
		}
		levels = append(levels, level)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. A level without an ID takes its file
// name without extension.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	return Level{
		ID:       id,
		Name:     parsed.Name,
		Shots:    parsed.Shots,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Items:    parsed.Items,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".txt", ".lvl":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
