package decision

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	meal    lipgloss.Style
	detail  lipgloss.Style
	rescue  lipgloss.Style
	reason  lipgloss.Style
	meta    lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		meal:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		rescue:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		reason:  lipgloss.NewStyle().Foreground(lipgloss.Color("216")),
		meta:    lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
	}
}
