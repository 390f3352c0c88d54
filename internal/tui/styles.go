package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AvengeMedia/dankmotion/internal/theme"
)

type Styles struct {
	Banner        lipgloss.Style
	Title         lipgloss.Style
	Subtle        lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Image         lipgloss.Style
}

func NewStyles(p theme.Palette) Styles {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Subtle)).
		Foreground(lipgloss.Color(p.Text)).
		Padding(0, 2).
		Align(lipgloss.Center)

	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true).
			MarginBottom(1),
		Subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Subtle)),
		Button: button,
		ButtonFocused: button.
			BorderForeground(lipgloss.Color(p.Accent)).
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		Image: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Image)),
	}
}
