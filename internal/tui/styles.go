package tui

import "github.com/charmbracelet/lipgloss"

// Color definitions for the TUI
var (
	titleColor    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))                    // White
	subtitleColor = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))                                // Dark grey
	matchColor    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))                    // Green
	missingColor  = lipgloss.NewStyle().Strikethrough(true).Bold(true).Foreground(lipgloss.Color("9")) // Red
	keyColor      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))                               // Yellow
	countColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))                               // Blue
	hintColor     = lipgloss.NewStyle().Bold(true)
)
