package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the console styles used by the interactive session.
type Theme struct {
	Banner   lipgloss.Style
	Goodbye  lipgloss.Style
	Reply    lipgloss.Style
	Notice   lipgloss.Style
	Header   lipgloss.Style
	Name     lipgloss.Style
	Phones   lipgloss.Style
	Birthday lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Goodbye:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Reply:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		Name:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Phones:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Birthday: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// PlainTheme returns an uncolored theme for no_color terminals.
func PlainTheme() Theme {
	return Theme{
		Banner:   lipgloss.NewStyle(),
		Goodbye:  lipgloss.NewStyle(),
		Reply:    lipgloss.NewStyle(),
		Notice:   lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle(),
		Name:     lipgloss.NewStyle(),
		Phones:   lipgloss.NewStyle(),
		Birthday: lipgloss.NewStyle(),
	}
}
