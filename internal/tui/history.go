package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const historyHelp = "↑/↓ scroll • pgup/pgdn page • q/esc back"

var (
	historyTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).Padding(0, 1)
	historyFooterStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// HistoryModel is the bubbletea model for the scrollable history viewer
type HistoryModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

// NewHistoryModel creates a viewer showing content under title
func NewHistoryModel(title, content string) HistoryModel {
	return HistoryModel{title: title, content: content}
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) chromeHeight() int {
	return lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - m.chromeHeight()
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m HistoryModel) headerView() string {
	return historyTitleStyle.Render(m.title)
}

func (m HistoryModel) footerView() string {
	percent := 100.0
	if m.ready {
		percent = m.viewport.ScrollPercent() * 100
	}
	return historyFooterStyle.Render(fmt.Sprintf("%s • %3.f%%", historyHelp, percent))
}

func (m HistoryModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	return strings.Join([]string{m.headerView(), m.viewport.View(), m.footerView()}, "\n")
}

// RunHistoryViewer shows content full screen until the user leaves.
// When the terminal is not interactive the content is written to out instead.
func RunHistoryViewer(in io.Reader, out io.Writer, title, content string) error {
	if !IsTTY() {
		_, err := fmt.Fprintln(out, content)
		return err
	}
	p := tea.NewProgram(NewHistoryModel(title, content),
		tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("history viewer failed: %w", err)
	}
	return nil
}
