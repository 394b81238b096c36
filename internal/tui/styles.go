package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles for the picker chrome.
//
//nolint:gochecknoglobals // lipgloss styles are shared, immutable values.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	InfoStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240"))
	CardStyle   = lipgloss.NewStyle().PaddingLeft(2)
	DetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
