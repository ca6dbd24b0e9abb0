package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Diagnostics are tinted only when stderr is an actual terminal; piped and
// scripted runs get plain text.
var stderrIsTTY = term.IsTerminal(int(os.Stderr.Fd()))

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func styled(st lipgloss.Style, s string) string {
	if !stderrIsTTY {
		return s
	}
	return st.Render(s)
}

func errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styled(errStyle, fmt.Sprintf(format, args...)))
}

func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, styled(warnStyle, fmt.Sprintf(format, args...)))
}
