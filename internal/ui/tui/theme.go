package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title   lipgloss.Style
	Help    lipgloss.Style
	Expired lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Expired: lipgloss.NewStyle().Faint(true).Strikethrough(true),
	}
}
