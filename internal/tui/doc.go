// Package tui provides the terminal user interface for vigit.
//
// It handles:
//   - Interactive prompts and selections (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling, colors and screen clearing (using lipgloss and termenv)
//   - The scrollable history viewer (using bubbletea)
package tui
