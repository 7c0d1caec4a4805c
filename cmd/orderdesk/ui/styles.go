// Package ui provides the shared terminal presentation for orderdesk:
// lipgloss styles honoring the saved light/dark preference, the order
// table, and the interactive bubbletea host.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomypizza/orderdesk/theme"
)

var (
	// Light mode colors
	lightForeground = lipgloss.Color("#2d2a26")
	lightMuted      = lipgloss.Color("#8a8578")
	lightAccent     = lipgloss.Color("#c62828") // tomato red

	// Dark mode colors
	darkForeground = lipgloss.Color("#f2efe9")
	darkMuted      = lipgloss.Color("#7d7a72")
	darkAccent     = lipgloss.Color("#ef5350")

	// Semantic colors, same in both modes
	colorSuccess = lipgloss.Color("#2e7d32")
	colorWarning = lipgloss.Color("#f9a825")
)

// Styles holds the rendered styles for the current theme.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Done    lipgloss.Style
	Overdue lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles builds the style set for the given theme preference.
func NewStyles(t theme.Theme) Styles {
	fg, muted, accent := lightForeground, lightMuted, lightAccent
	if t == theme.Dark {
		fg, muted, accent = darkForeground, darkMuted, darkAccent
	}

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		Body:    lipgloss.NewStyle().Foreground(fg),
		Muted:   lipgloss.NewStyle().Foreground(muted),
		Accent:  lipgloss.NewStyle().Foreground(accent),
		Done:    lipgloss.NewStyle().Foreground(colorSuccess),
		Overdue: lipgloss.NewStyle().Foreground(colorWarning),
		Help:    lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}
