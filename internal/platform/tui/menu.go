package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

// MenuOutcome is what the player chose in the mode menu.
type MenuOutcome int

const (
	MenuQuit MenuOutcome = iota
	MenuPlay
	MenuScoreboard
)

// MenuItem is one row of the mode menu. Rows without a GameID open the
// scoreboard or quit.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
	outcome   MenuOutcome
}

// MenuModel is the mode picker shown by "bubbles menu".
type MenuModel struct {
	items   []MenuItem
	cursor  int
	config  core.RuntimeConfig
	keys    *KeyMapper
	theme   Theme
	outcome MenuOutcome
	done    bool
}

// NewMenuModel lists every registered mode followed by the scoreboard and
// quit rows. Best scores are read from store when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, g := range registry.List() {
		item := MenuItem{GameID: g.ID, Title: g.Title, outcome: MenuPlay}
		if store != nil {
			item.HighScore, _ = store.HighScore(g.ID)
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Title: "Scoreboard", outcome: MenuScoreboard},
		MenuItem{Title: "Quit", outcome: MenuQuit},
	)

	return MenuModel{
		items:  items,
		config: cfg,
		keys:   NewKeyMapper(),
		theme:  GetTheme(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			return m.finish(m.items[m.cursor].outcome)
		case MenuActionScoreboard:
			return m.finish(MenuScoreboard)
		case MenuActionQuit, MenuActionBack:
			return m.finish(MenuQuit)
		}
	}
	return m, nil
}

func (m MenuModel) finish(o MenuOutcome) (tea.Model, tea.Cmd) {
	m.outcome, m.done = o, true
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.done {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		m.theme.MenuTitle.Render("B U B B L E S"),
		"",
		m.theme.MenuDescription.Render("Select a mode"),
		"",
	}
	for i, item := range m.items {
		style, cursor := m.theme.MenuItemNormal, "  "
		if i == m.cursor {
			style, cursor = m.theme.MenuItemActive, "> "
		}
		line := style.Render(cursor + item.Title)
		if item.HighScore > 0 {
			line += m.theme.MenuDescription.Render("  best " + strconv.Itoa(item.HighScore))
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", m.theme.Controls.Render("↑/↓ navigate  enter select  tab scores  q quit"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, w))
		b.WriteString("\n")
	}
	return b.String()
}

// Outcome returns the player's choice and, for MenuPlay, the chosen mode.
func (m MenuModel) Outcome() (MenuOutcome, string) {
	if m.outcome == MenuPlay {
		return MenuPlay, m.items[m.cursor].GameID
	}
	return m.outcome, ""
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Outcome MenuOutcome
	GameID  string
	Config  core.RuntimeConfig // updated by resizes
}

// RunMenu runs the mode menu until the player picks a row.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg}, nil
	}
	outcome, id := m.Outcome()
	return MenuResult{Outcome: outcome, GameID: id, Config: m.config}, nil
}
