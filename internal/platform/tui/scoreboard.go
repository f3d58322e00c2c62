package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-arcade/internal/registry"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

const (
	scoreRows  = 100 // top scores loaded per mode
	recentRows = 50  // recent rounds loaded per mode
)

// boardView selects what the scoreboard table shows.
type boardView int

const (
	viewScores boardView = iota
	viewLevels
	viewRecent

	viewCount
)

var boardViewNames = [viewCount]string{"High Scores", "Levels", "Recent"}

func (v boardView) String() string {
	if v < 0 || v >= viewCount {
		return "?"
	}
	return boardViewNames[v]
}

// columns returns the table columns of the view for a table of width w.
func (v boardView) columns(w int) []table.Column {
	switch v {
	case viewLevels:
		return []table.Column{
			{Title: "Level", Width: clampWidth(w-32, 14, 24)},
			{Title: "Played", Width: 7},
			{Title: "Won", Width: 5},
			{Title: "Best", Width: 6},
			{Title: "Shots", Width: 6},
		}
	case viewRecent:
		return []table.Column{
			{Title: "Level", Width: clampWidth(w-44, 14, 24)},
			{Title: "Result", Width: 7},
			{Title: "Score", Width: 7},
			{Title: "Shots", Width: 6},
			{Title: "Date", Width: 14},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 12},
			{Title: "Date", Width: clampWidth(w-22, 14, 20)},
		}
	}
}

func clampWidth(w, lo, hi int) int {
	return min(max(w, lo), hi)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode, k.NextView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
		NextView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "scores/levels/recent")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows stored results of one game mode at a time.
type ScoreboardModel struct {
	store *storage.Store
	modes []registry.GameInfo
	mode  int
	view  boardView

	scores []storage.ScoreEntry
	levels []storage.LevelStats
	recent []storage.RoundEntry

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap
	theme Theme

	width, height int
	back, quit    bool
}

func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		theme:  GetTheme(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload fetches the data of the current mode and rebuilds the table.
// Storage errors show as an empty table.
func (m *ScoreboardModel) reload() {
	m.scores, m.levels, m.recent = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		m.scores, _ = m.store.TopScores(id, scoreRows)
		m.levels, _ = m.store.LevelStats(id)
		m.recent, _ = m.store.RecentRounds(id, recentRows)
	}
	m.rebuild()
}

func (m *ScoreboardModel) rebuild() {
	t := table.New(
		table.WithColumns(m.view.columns(m.width-8)),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = m.theme.MenuItemActive
	t.SetStyles(s)
	m.table = t
}

func (m *ScoreboardModel) rows() []table.Row {
	var rows []table.Row
	switch m.view {
	case viewLevels:
		for _, ls := range m.levels {
			rows = append(rows, table.Row{
				ls.LevelID,
				strconv.Itoa(ls.Played),
				strconv.Itoa(ls.Won),
				strconv.Itoa(ls.BestScore),
				dashIfZero(ls.FewestShots),
			})
		}
	case viewRecent:
		for _, r := range m.recent {
			result := "lost"
			if r.Won {
				result = "won"
			}
			rows = append(rows, table.Row{
				r.LevelID,
				result,
				strconv.Itoa(r.Score),
				strconv.Itoa(r.ShotsUsed),
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	default:
		for i, s := range m.scores {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	return rows
}

func dashIfZero(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycleMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycleMode(-1)
			return m, nil
		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.rebuild()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycleMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.MenuTitle.Render(centerText(strings.ToUpper(m.view.String()), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	b.WriteString(centerText(frame.Render(m.body()), m.width))
	b.WriteString("\n")
	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the mode selector, or just the current mode when the
// full list does not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = m.theme.MenuItemActive.Render("[" + g.Title + "]")
		} else {
			parts[i] = m.theme.MenuItemNormal.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}
	return line
}

func (m ScoreboardModel) body() string {
	var empty string
	switch {
	case m.view == viewScores && len(m.scores) == 0:
		empty = "No scores recorded yet.\nClear a level to set a high score!"
	case m.view == viewLevels && len(m.levels) == 0:
		empty = "No rounds recorded yet."
	case m.view == viewRecent && len(m.recent) == 0:
		empty = "No rounds recorded yet."
	}
	if empty != "" {
		return m.theme.MenuDescription.Italic(true).Padding(2, 4).Render(empty)
	}
	return m.table.View()
}

// WantsBack reports whether the player left with Back rather than Quit.
func (m ScoreboardModel) WantsBack() bool {
	return m.back
}

// RunScoreboard runs the scoreboard screen. goBack is true when the player
// wants to return to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.WantsBack(), nil
}
