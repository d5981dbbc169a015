package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorDim    = lipgloss.Color("#928374")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Styles are the lipgloss styles used for the day listing. They are bound to
// a renderer so color detection follows the stream being written, not stdout.
type Styles struct {
	Day   lipgloss.Style
	Hours lipgloss.Style
	Total lipgloss.Style
	Rule  lipgloss.Style
}

// NewStyles builds Styles for r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Day:   r.NewStyle().Foreground(ColorDim),
		Hours: r.NewStyle().Foreground(ColorGreen),
		Total: r.NewStyle().Foreground(ColorHeader).Bold(true),
		Rule:  r.NewStyle().Foreground(ColorDim),
	}
}
