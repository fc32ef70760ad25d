package repl

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles holds every style used by the calculator, bound to one output
type styles struct {
	title  lipgloss.Style
	help   lipgloss.Style
	prompt lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	border lipgloss.Style
}

// newStyles binds the styles to out. Writers that are not terminals get plain text.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(colorPrimary),
		help:   r.NewStyle().Foreground(colorMuted),
		prompt: r.NewStyle().Bold(true),
		result: r.NewStyle().Foreground(colorSecondary),
		err:    r.NewStyle().Foreground(colorError),
		header: r.NewStyle().Bold(true).Foreground(colorPrimary).PaddingRight(2),
		cell:   r.NewStyle().PaddingRight(2),
		border: r.NewStyle().Foreground(colorMuted),
	}
}
