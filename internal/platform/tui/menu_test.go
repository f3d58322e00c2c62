package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
)

func testChoices() []LevelChoice {
	return []LevelChoice{
		{ID: "01_a", Title: "Alpha", Shots: 20, Played: 3, Won: 1},
		{ID: "02_b", Title: "Beta", Shots: 15, Played: 1},
		{ID: "03_c", Title: "Gamma", Shots: 10},
	}
}

func levelKey(m LevelMenuModel, msg tea.KeyMsg) LevelMenuModel {
	next, _ := m.Update(msg)
	return next.(LevelMenuModel)
}

func TestLevelMenuSelect(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  string
	}{
		{"start from beginning", 0, ""},
		{"second level", 2, "02_b"},
		{"cursor stops at last level", 10, "03_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLevelMenuModel(testChoices(), 80, 24)
			for range tt.downs {
				m = levelKey(m, tea.KeyMsg{Type: tea.KeyDown})
			}
			if _, ok := m.Selected(); ok {
				t.Fatal("Selected() before Enter")
			}
			m = levelKey(m, tea.KeyMsg{Type: tea.KeyEnter})
			got, ok := m.Selected()
			if !ok || got != tt.want {
				t.Errorf("Selected() = %q, %v, expected %q", got, ok, tt.want)
			}
		})
	}
}

func TestLevelMenuBack(t *testing.T) {
	m := levelKey(NewLevelMenuModel(testChoices(), 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() {
		t.Error("esc should go back")
	}
}

func TestLevelMenuScroll(t *testing.T) {
	var choices []LevelChoice
	for i := range 20 {
		choices = append(choices, LevelChoice{ID: string(rune('a' + i)), Title: "Level " + string(rune('A'+i))})
	}
	// Height 13 leaves 3 visible level rows
	m := NewLevelMenuModel(choices, 80, 13)
	for range 10 {
		m = levelKey(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.scrollOffset != 7 {
		t.Errorf("scrollOffset = %d, expected 7", m.scrollOffset)
	}

	view := m.View()
	if !strings.Contains(view, "Level J") || strings.Contains(view, "Level F") {
		t.Errorf("view does not follow the cursor:\n%s", view)
	}
	if !strings.Contains(view, "more above") || !strings.Contains(view, "more below") {
		t.Error("scroll indicators missing")
	}
}

func TestLevelMenuViewShowsHistory(t *testing.T) {
	view := NewLevelMenuModel(testChoices(), 100, 24).View()
	for _, want := range []string{"Start from Beginning", "Alpha", "won 1/3", "tried 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestModeMenuOutcome(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	modes := len(registry.List())

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuOutcome
		mode string
	}{
		{"first mode", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuPlay, "bubbles"},
		{"scoreboard row", nil, MenuScoreboard, ""},
		{"tab opens scoreboard", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuScoreboard, ""},
		{"quit row", nil, MenuQuit, ""},
		{"escape quits", []tea.KeyMsg{{Type: tea.KeyEsc}}, MenuQuit, ""},
	}
	// Rows past the modes are the scoreboard and quit rows.
	tests[1].keys = append(downs(modes), tea.KeyMsg{Type: tea.KeyEnter})
	tests[3].keys = append(downs(modes+5), tea.KeyMsg{Type: tea.KeyEnter})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, cfg)
			for _, k := range tt.keys {
				m = menuKey(m, k)
			}
			outcome, mode := m.Outcome()
			if outcome != tt.want || mode != tt.mode {
				t.Errorf("Outcome() = %v, %q, expected %v, %q", outcome, mode, tt.want, tt.mode)
			}
			if m.View() != "" {
				t.Error("a finished menu should render nothing")
			}
		})
	}
}

func TestModeMenuView(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	out := m.View()
	for _, s := range []string{"B U B B L E S", "> ", "Scoreboard", "Quit"} {
		if !strings.Contains(out, s) {
			t.Errorf("View() missing %q", s)
		}
	}
}

func downs(n int) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, n)
	for i := range keys {
		keys[i] = tea.KeyMsg{Type: tea.KeyDown}
	}
	return keys
}
