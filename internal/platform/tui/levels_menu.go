package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

// LevelChoice is one row of the level picker.
type LevelChoice struct {
	ID     string
	Title  string
	Shots  int
	Played int
	Won    int
}

// LevelChoices lists the playable levels with the round history of gameID.
// The store may be nil.
func LevelChoices(store *storage.Store, gameID string) []LevelChoice {
	stats := make(map[string]storage.LevelStats)
	if store != nil {
		if all, err := store.LevelStats(gameID); err == nil {
			for _, s := range all {
				stats[s.LevelID] = s
			}
		}
	}

	lvls := bubbles.PlayableLevels()
	choices := make([]LevelChoice, 0, len(lvls))
	for _, l := range lvls {
		s := stats[l.ID]
		choices = append(choices, LevelChoice{
			ID:     l.ID,
			Title:  l.Title(),
			Shots:  l.Shots,
			Played: s.Played,
			Won:    s.Won,
		})
	}
	return choices
}

// LevelMenuModel is the level picker shown before a campaign.
// Row 0 is "Start from Beginning", row i is level i-1.
type LevelMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	levels       []LevelChoice
	selected     string
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewLevelMenuModel creates a new level selection model.
func NewLevelMenuModel(levels []LevelChoice, width, height int) LevelMenuModel {
	return LevelMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		levels:    levels,
		choosing:  true,
		theme:     GetTheme(),
	}
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levels) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor > 0 {
			m.selected = m.levels[m.cursor-1].ID
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems returns how many level rows fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	// Row 0 is the start option, level rows start at 1
	if m.cursor == 0 {
		m.scrollOffset = 0
		return
	}
	idx := m.cursor - 1
	visible := m.visibleItems()
	if idx < m.scrollOffset {
		m.scrollOffset = idx
	} else if idx >= m.scrollOffset+visible {
		m.scrollOffset = idx - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("L E V E L S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if m.scrollOffset == 0 {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if m.cursor == 0 {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(cursor+"Start from Beginning"), m.width))
		b.WriteString("\n")
	}

	endIdx := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	for i := m.scrollOffset; i < endIdx; i++ {
		lvl := m.levels[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i+1 == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		line := style.Render(fmt.Sprintf("%s%2d. %-16s %2d shots", cursor, i+1, lvl.Title, lvl.Shots))
		switch {
		case lvl.Won > 0:
			line += m.theme.LevelWon.Render(fmt.Sprintf("  won %d/%d", lvl.Won, lvl.Played))
		case lvl.Played > 0:
			line += m.theme.LevelPlayed.Render(fmt.Sprintf("  tried %d", lvl.Played))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.levels) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level ID ("" for the first level) and whether
// a choice was made.
func (m LevelMenuModel) Selected() (string, bool) {
	return m.selected, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// RunLevelSelector runs the level picker. ok is false when the user backed
// out or quit.
func RunLevelSelector(levels []LevelChoice, cfg core.RuntimeConfig) (levelID string, ok bool, err error) {
	p := tea.NewProgram(
		NewLevelMenuModel(levels, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(LevelMenuModel)
	if !isModel || m.IsQuitting() || m.WantsBack() {
		return "", false, nil
	}

	levelID, ok = m.Selected()
	return levelID, ok, nil
}
