package tui

import "github.com/charmbracelet/lipgloss"

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	blueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// ColorRed colors text red
func ColorRed(text string) string {
	return redStyle.Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return greenStyle.Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return yellowStyle.Render(text)
}

// ColorBlue colors text blue
func ColorBlue(text string) string {
	return blueStyle.Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return cyanStyle.Render(text)
}

// ColorDim renders text faint
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// Title renders a menu title
func Title(text string) string {
	return titleStyle.Render(text)
}

// CurrentBranchLine renders the "Currently on" header shown above menus
func CurrentBranchLine(branch string) string {
	if branch == "" {
		return ""
	}
	return greenStyle.Render("Currently on: ") + cyanStyle.Render(branch)
}
