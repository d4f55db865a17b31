package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
)

// styles are bound to the output writer so colour is only emitted to
// terminals that support it.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
	tag     lipgloss.Style
	box     lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		heading: r.NewStyle().Bold(true).Foreground(colorAccent).MarginTop(1),
		dim:     r.NewStyle().Foreground(colorDim),
		accent:  r.NewStyle().Foreground(colorAccent),
		tag:     r.NewStyle().Foreground(colorGreen),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
	}
}
