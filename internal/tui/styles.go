package tui

import "github.com/charmbracelet/lipgloss"

// ColorMuted is used for secondary text such as key help.
var ColorMuted = lipgloss.Color("240") // Dark gray

// HelpStyle renders the key help under a question.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorMuted)
