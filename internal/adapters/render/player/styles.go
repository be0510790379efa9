package player

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	meta     lipgloss.Style
	running  lipgloss.Style
	stopped  lipgloss.Style
	phase    lipgloss.Style
	bar      lipgloss.Style
	barEmpty lipgloss.Style
	done     lipgloss.Style
	frame    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("79")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		running:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		stopped:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180")),
		phase:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("115")),
		barEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		done:     lipgloss.NewStyle().Bold(true),
		frame:    lipgloss.NewStyle().Padding(1, 2),
	}
}
