package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

func boardKey(m ScoreboardModel, msg tea.KeyMsg) ScoreboardModel {
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("bubbles", 420); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}
	round := core.RoundSummary{GameID: "bubbles", LevelID: "01_warmup", Won: true, Score: 420, ShotsUsed: 9}
	if _, err := store.SaveRound(round); err != nil {
		t.Fatalf("SaveRound() error: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.modes[m.mode].ID != "bubbles" {
		t.Fatalf("first mode = %q, expected bubbles", m.modes[m.mode].ID)
	}

	tests := []struct {
		view boardView
		want []string
	}{
		{viewScores, []string{"HIGH SCORES", "#1", "420"}},
		{viewLevels, []string{"LEVELS", "01_warmup"}},
		{viewRecent, []string{"RECENT", "won", "9"}},
		{viewScores, []string{"HIGH SCORES"}},
	}
	for i, tt := range tests {
		if m.view != tt.view {
			t.Fatalf("step %d: view = %v, expected %v", i, m.view, tt.view)
		}
		out := m.View()
		for _, s := range tt.want {
			if !strings.Contains(out, s) {
				t.Errorf("%v view missing %q", tt.view, s)
			}
		}
		m = boardKey(m, runeKey('v'))
	}
}

func TestScoreboardModes(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if len(m.modes) < 2 {
		t.Skip("needs two registered modes")
	}

	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty store should show the empty message")
	}

	m = boardKey(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != 1 {
		t.Errorf("mode after tab = %d, expected 1", m.mode)
	}
	m = boardKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = boardKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if want := len(m.modes) - 1; m.mode != want {
		t.Errorf("mode after wrapping back = %d, expected %d", m.mode, want)
	}

	m = boardKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.WantsBack() || m.View() != "" {
		t.Error("esc should leave the scoreboard with back set")
	}
}
