package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/config"
)

func hex(c config.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// styles are the status bar styles derived from a colour scheme.
type styles struct {
	bar    lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
	key    lipgloss.Style
	hint   lipgloss.Style
	help   lipgloss.Style
}

func newStyles(sc config.Scheme) styles {
	return styles{
		bar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(hex(sc.Outline)),
		label:  lipgloss.NewStyle().Foreground(hex(sc.ProjectText)),
		value:  lipgloss.NewStyle().Foreground(hex(sc.ProjectActive)).Bold(true),
		accent: lipgloss.NewStyle().Foreground(hex(sc.HighlightBall)).Bold(true),
		key:    lipgloss.NewStyle().Foreground(hex(sc.HighlightBall)),
		hint:   lipgloss.NewStyle().Foreground(hex(sc.Outline)),
		help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(hex(sc.HighlightBall)).
			Padding(0, 2),
	}
}

// keyHint renders "[KEY] action" pairs.
func (s styles) keyHint(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			out += "  "
		}
		out += s.key.Render("["+pairs[i]+"]") + " " + s.hint.Render(pairs[i+1])
	}
	return out
}

// field renders "label value".
func (s styles) field(label, value string) string {
	return s.label.Render(label) + " " + s.value.Render(value)
}
