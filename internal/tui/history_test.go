package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestHistoryModel(t *testing.T) {
	t.Run("renders content once the window size is known", func(t *testing.T) {
		m := NewHistoryModel("History", "* abc123 first\n* def456 second")
		require.Equal(t, "Loading...", m.View())

		updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
		view := updated.View()
		require.Contains(t, view, "History")
		require.Contains(t, view, "abc123 first")
		require.Contains(t, view, "def456 second")
	})

	t.Run("quits on q", func(t *testing.T) {
		m := NewHistoryModel("History", "x")
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("scrolls long content", func(t *testing.T) {
		lines := make([]string, 100)
		for i := range lines {
			lines[i] = "commit"
		}
		m := NewHistoryModel("History", strings.Join(lines, "\n"))
		updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
		updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyPgDown})

		hm := updated.(HistoryModel)
		require.Positive(t, hm.viewport.YOffset)
	})
}
