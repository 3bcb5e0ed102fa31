package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Banner is printed at the top of every cleared screen
const Banner = "VISUAL GIT"

// Screen clears and decorates the terminal between menus.
type Screen struct {
	out     *termenv.Output
	writer  io.Writer
	enabled bool
}

// NewScreen creates a Screen writing to w. Clearing is skipped when enabled is
// false or w is not a terminal.
func NewScreen(w io.Writer, enabled bool) *Screen {
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		enabled = false
	}
	return &Screen{out: termenv.NewOutput(w), writer: w, enabled: enabled}
}

// Clear wipes the terminal and prints the banner.
func (s *Screen) Clear() {
	if s.enabled {
		s.out.ClearScreen()
	}
	s.PrintBanner()
}

// PrintBanner prints the banner and a rule below it.
func (s *Screen) PrintBanner() {
	_, _ = fmt.Fprintf(s.writer, "\n%s\n%s\n", Title(Banner), strings.Repeat("-", 30))
}

// IsTTY returns true if both stdin and stdout are terminals
func IsTTY() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}
